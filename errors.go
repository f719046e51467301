package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xmac: empty input")

	// ErrInvalidLength 表示总长度、分组数量或分组长度不符合所选记法。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrInvalidDigit 表示在应为十六进制数字的位置遇到非法字符。
	ErrInvalidDigit = errors.New("xmac: invalid hex digit")

	// ErrMixedSeparator 表示同一字符串中混用了多种分隔符。
	ErrMixedSeparator = errors.New("xmac: mixed separators")

	// ErrInvalidFormat 表示输入结构无法识别（如 Scan 不支持的源类型）。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrOverflow 表示地址运算溢出（超过 ff:ff:ff:ff:ff:ff）。
	ErrOverflow = errors.New("xmac: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于 00:00:00:00:00:00）。
	ErrUnderflow = errors.New("xmac: address underflow")

	// ErrNilReceiver 表示对 nil 指针执行反序列化。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
