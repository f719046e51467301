package xmac

// IsZero 报告 a 是否为零地址（00:00:00:00:00:00）。
// 零地址等于零值 Addr{}。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a == Broadcast()
}

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（I/G 位）为 0。
// 任何地址恰好是单播或多播之一。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&0x01 == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（I/G 位）为 1。
// 广播地址是一种特殊的多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 1
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（U/L 位）为 1。
// 虚拟机、容器等通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的第一字节次低位（U/L 位）为 0。
// 物理网卡出厂时分配的地址通常是 UAA。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&0x02 == 0
}

// OUI 返回组织唯一标识符（MAC 地址的前 3 字节）。
// 这只是字节访问器，不做任何厂商数据库查询。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// NIC 返回设备标识部分（MAC 地址的后 3 字节，由制造商分配）。
func (a Addr) NIC() [3]byte {
	return [3]byte{a.bytes[3], a.bytes[4], a.bytes[5]}
}
