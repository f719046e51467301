package xmac

// Zero 返回零地址 00:00:00:00:00:00。
// 与零值 Addr{} 相同；在协议语境里通常表示"未知"。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff，
// 用于向局域网内所有设备发送数据。
func Broadcast() Addr {
	return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
}

// IsSpecial 报告 a 是否为特殊地址（零地址或广播地址）。
func (a Addr) IsSpecial() bool {
	return a.IsZero() || a.IsBroadcast()
}

// IsUsable 报告 a 是否可分配给具体设备使用，
// 即既不是零地址也不是广播地址。
// 资产识别等业务场景建议用此方法过滤。
func (a Addr) IsUsable() bool {
	return !a.IsSpecial()
}
