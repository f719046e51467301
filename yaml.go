package xmac

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML 实现 [yaml.Marshaler]。
// 输出规范格式的标量字符串。
func (a Addr) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML 实现 [yaml.Unmarshaler]（yaml.v3 节点接口）。
// 支持所有 [Parse] 支持的记法。对 nil 接收者返回 [ErrNilReceiver]。
//
// 注意：点分与无分隔符记法在 YAML 里可能被推断为数字，
// 写配置时建议加引号（mac: "1234.56ab.cdef"）。
func (a *Addr) UnmarshalYAML(value *yaml.Node) error {
	if a == nil {
		return ErrNilReceiver
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
