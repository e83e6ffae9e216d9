// Package controller 持有每个页面的视图状态，以及把它们组织在一起的访客工作区。
package controller

import "errors"

var (
	// ErrBusy 表示该页面已有一个请求在进行中，对应界面上被禁用的按钮。
	ErrBusy = errors.New("a request is already in progress")
	// ErrEmptyInput 表示必填的文本为空或只包含空白。
	ErrEmptyInput = errors.New("input must not be empty")
	// ErrInvalidInput 表示输入不属于允许的取值。
	ErrInvalidInput = errors.New("invalid input")
	// ErrViewNotMounted 表示访问的页面当前没有挂载。
	ErrViewNotMounted = errors.New("view is not mounted")
	// ErrTaskNotFound 表示任务 ID 不存在。
	ErrTaskNotFound = errors.New("task not found")
)
