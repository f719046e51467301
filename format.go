package xmac

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatColon 冒号分隔，小写：12:34:56:ab:cd:ef（规范格式）
	FormatColon Format = iota
	// FormatDash 短线分隔，小写：12-34-56-ab-cd-ef
	FormatDash
	// FormatDot 点分隔（Cisco 风格），小写：1234.56ab.cdef
	FormatDot
	// FormatBare 无分隔符，小写：123456abcdef
	FormatBare
	// FormatHex 0x 前缀 + 无分隔符，小写：0x123456abcdef
	FormatHex
	// FormatColonUpper 冒号分隔，大写：12:34:56:AB:CD:EF
	FormatColonUpper
	// FormatDashUpper 短线分隔，大写：12-34-56-AB-CD-EF
	FormatDashUpper
	// FormatDotUpper 点分隔，大写：1234.56AB.CDEF
	FormatDotUpper
	// FormatBareUpper 无分隔符，大写：123456ABCDEF
	FormatBareUpper
	// FormatHexUpper 0x 前缀 + 无分隔符，大写数字：0x123456ABCDEF
	FormatHexUpper
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// maxFormatLen 是所有格式中最长的输出长度（冒号/短线格式的 17 字节）。
const maxFormatLen = 17

// String 返回规范格式（小写冒号分隔）的字符串表示。
// 对任何地址值（包括零地址）都产生完整的 17 字符输出。
func (a Addr) String() string {
	return a.FormatString(FormatColon)
}

// FormatString 按指定格式返回 MAC 地址字符串。
// 每个字节固定渲染为两个零填充的十六进制数字。
// 未知的 Format 值按 [FormatColon] 处理。
func (a Addr) FormatString(f Format) string {
	var buf [maxFormatLen]byte
	return string(a.AppendFormat(buf[:0], f))
}

// AppendFormat 将按 f 格式化的地址追加到 dst 并返回扩展后的切片。
// 用于免分配地拼接输出。
func (a Addr) AppendFormat(dst []byte, f Format) []byte {
	switch f {
	case FormatColon:
		return appendSeparated(dst, a.bytes, ':', hexLower)
	case FormatDash:
		return appendSeparated(dst, a.bytes, '-', hexLower)
	case FormatDot:
		return appendDotted(dst, a.bytes, hexLower)
	case FormatBare:
		return appendBare(dst, a.bytes, hexLower)
	case FormatHex:
		return appendBare(append(dst, '0', 'x'), a.bytes, hexLower)
	case FormatColonUpper:
		return appendSeparated(dst, a.bytes, ':', hexUpper)
	case FormatDashUpper:
		return appendSeparated(dst, a.bytes, '-', hexUpper)
	case FormatDotUpper:
		return appendDotted(dst, a.bytes, hexUpper)
	case FormatBareUpper:
		return appendBare(dst, a.bytes, hexUpper)
	case FormatHexUpper:
		return appendBare(append(dst, '0', 'x'), a.bytes, hexUpper)
	default:
		return appendSeparated(dst, a.bytes, ':', hexLower)
	}
}

// appendSeparated 追加冒号/短线分隔形式（xx:xx:xx:xx:xx:xx）。
func appendSeparated(dst []byte, b [6]byte, sep byte, digits string) []byte {
	for i, v := range b {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, digits[v>>4], digits[v&0x0f])
	}
	return dst
}

// appendDotted 追加点分隔形式（xxxx.xxxx.xxxx），每组 2 字节。
func appendDotted(dst []byte, b [6]byte, digits string) []byte {
	for i, v := range b {
		if i == 2 || i == 4 {
			dst = append(dst, '.')
		}
		dst = append(dst, digits[v>>4], digits[v&0x0f])
	}
	return dst
}

// appendBare 追加无分隔符形式（xxxxxxxxxxxx）。
func appendBare(dst []byte, b [6]byte, digits string) []byte {
	for _, v := range b {
		dst = append(dst, digits[v>>4], digits[v&0x0f])
	}
	return dst
}
