package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范格式（小写冒号分隔），零地址输出 "00:00:00:00:00:00"。
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendFormat(make([]byte, 0, maxFormatLen), FormatColon), nil
}

// AppendText 实现 [encoding.TextAppender]。
func (a Addr) AppendText(b []byte) ([]byte, error) {
	return a.AppendFormat(b, FormatColon), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的记法；空输入返回 [ErrEmpty]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范格式字符串（"12:34:56:ab:cd:ef"）。
//
// 输出仅包含 [0-9a-f:] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, maxFormatLen+2)
	buf = append(buf, '"')
	buf = a.AppendFormat(buf, FormatColon)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的记法。JSON null 设置为零地址；
// 空字符串返回 [ErrEmpty]。对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
// 输出原始 6 字节，网络字节序。CBOR 等二进制编码通过此接口工作。
func (a Addr) MarshalBinary() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, a.bytes[:])
	return b, nil
}

// AppendBinary 实现 [encoding.BinaryAppender]。
func (a Addr) AppendBinary(b []byte) ([]byte, error) {
	return append(b, a.bytes[:]...), nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 输入必须恰好 6 字节。对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(data) != 6 {
		return fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(data))
	}
	copy(a.bytes[:], data)
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，用于 SQL 数据库写入。
// 输出规范格式字符串。可空列请配合 [database/sql.Null] 使用。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]，用于 SQL 数据库读取。
// 支持的源类型：
//   - nil（SQL NULL）：设置为零地址
//   - string：任何 [Parse] 支持的记法
//   - []byte：6 字节视为原始二进制（BINARY(6) 列），
//     其他长度按字符串记法解析（文本记法最短 12 字符，不会与二进制混淆）
//
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported Scan type %T", ErrInvalidFormat, src)
	}
}
