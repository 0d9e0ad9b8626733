package models

import "errors"

// ErrInvalidInput 输入记录结构非法（负年龄、无法识别的性别等），直接返回给调用方，不重试
var ErrInvalidInput = errors.New("invalid input")
