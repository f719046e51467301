package xmac

import (
	"fmt"
	"net"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 支持且仅支持四种记法，大小写不敏感：
//   - 冒号分隔：12:34:56:ab:cd:ef（6 组，每组恰好 2 个十六进制数字）
//   - 短线分隔：12-34-56-ab-cd-ef（6 组，每组恰好 2 个十六进制数字）
//   - 点分隔（Cisco 风格）：1234.56ab.cdef（3 组，每组恰好 4 个十六进制数字）
//   - 无分隔符：123456abcdef 或 0x123456abcdef（可选 0x/0X 前缀，恰好 12 个数字）
//
// 按出现的分隔符选择语法分支，各分支严格校验分组结构：不允许空分组、
// 首尾分隔符、混合分隔符或首尾空白。解析结果与输入记法无关——
// 返回的 Addr 不记录来源格式。
func Parse(s string) (Addr, error) {
	if s == "" {
		return Addr{}, ErrEmpty
	}

	hasColon := strings.IndexByte(s, ':') >= 0
	hasDash := strings.IndexByte(s, '-') >= 0
	hasDot := strings.IndexByte(s, '.') >= 0

	switch {
	case hasColon && hasDash, hasColon && hasDot, hasDash && hasDot:
		return Addr{}, fmt.Errorf("%w in %q", ErrMixedSeparator, s)
	case hasColon:
		return parseSeparated(s, ':')
	case hasDash:
		return parseSeparated(s, '-')
	case hasDot:
		return parseDotted(s)
	default:
		return parseBare(s)
	}
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节（EUI-64 等其他长度返回 [ErrInvalidLength]）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes([]byte(hw))
}

// parseSeparated 解析 17 字符的冒号/短线分隔格式（xx:xx:xx:xx:xx:xx）。
// 零堆分配。
func parseSeparated(s string, sep byte) (Addr, error) {
	if len(s) != 17 {
		return Addr{}, fmt.Errorf("%w: expected 6 groups of 2 hex digits separated by %q, got %d chars",
			ErrInvalidLength, sep, len(s))
	}
	// 分隔符固定出现在索引 2, 5, 8, 11, 14
	for i := 2; i <= 14; i += 3 {
		if s[i] != sep {
			return Addr{}, fmt.Errorf("%w: expected separator %q at index %d", ErrInvalidLength, sep, i)
		}
	}

	var addr Addr
	for i := range 6 {
		b, err := parseHexByte(s, i*3)
		if err != nil {
			return Addr{}, err
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseDotted 解析 14 字符的点分隔格式（xxxx.xxxx.xxxx，Cisco 风格）。
// 零堆分配。
func parseDotted(s string) (Addr, error) {
	if len(s) != 14 || s[4] != '.' || s[9] != '.' {
		return Addr{}, fmt.Errorf("%w: expected 3 groups of 4 hex digits separated by '.'", ErrInvalidLength)
	}
	// 每个字节对在字符串中的起始偏移（索引 4 和 9 是点）
	offsets := [6]int{0, 2, 5, 7, 10, 12}
	var addr Addr
	for i, off := range offsets {
		b, err := parseHexByte(s, off)
		if err != nil {
			return Addr{}, err
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseBare 解析无分隔符格式，允许 0x/0X 前缀，前缀后必须恰好 12 个数字。
func parseBare(s string) (Addr, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 12 {
		return Addr{}, fmt.Errorf("%w: expected 12 hex digits, got %d", ErrInvalidLength, len(s))
	}
	var addr Addr
	for i := range 6 {
		b, err := parseHexByte(s, i*2)
		if err != nil {
			return Addr{}, err
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseHexByte 解析 s[i] 和 s[i+1] 两个十六进制字符为一个字节。
func parseHexByte(s string, i int) (byte, error) {
	hi := hexValue(s[i])
	if hi < 0 {
		return 0, fmt.Errorf("%w: %q at index %d", ErrInvalidDigit, s[i], i)
	}
	lo := hexValue(s[i+1])
	if lo < 0 {
		return 0, fmt.Errorf("%w: %q at index %d", ErrInvalidDigit, s[i+1], i+1)
	}
	return byte(hi<<4 | lo), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
