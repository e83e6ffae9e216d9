// Package validation 封装 go-playground/validator，统一输出友好的校验错误。
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Struct 按 struct tag 校验结构体，失败时返回合并后的可读错误。
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must match %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
