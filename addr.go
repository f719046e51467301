package xmac

import "net"

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 零值 Addr{} 就是零地址 00:00:00:00:00:00
//   - 只读共享，并发安全，无需加锁
//
// 字节按网络字节序（大端）存储，bytes[0] 是线路上最先传输的字节，
// 也是排序时的最高有效字节。
type Addr struct {
	// 使用固定大小数组而非切片：
	// 1. 值语义，可比较，可作为 map key
	// 2. 栈分配，零堆开销
	// 3. 编译期大小检查
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。不会失败。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// AddrFromUint64 从 v 的低 48 位创建 MAC 地址，高 16 位被丢弃。
func AddrFromUint64(v uint64) Addr {
	return Addr{bytes: [6]byte{
		byte(v >> 40), byte(v >> 32), byte(v >> 24),
		byte(v >> 16), byte(v >> 8), byte(v),
	}}
}

// Uint64 返回地址的 48 位数值表示（大端），高 16 位为零。
func (a Addr) Uint64() uint64 {
	b := a.bytes
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// Bytes 返回 MAC 地址的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Compare 按网络字节序（大端）比较两个 MAC 地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
// 可直接用作 [slices.SortFunc] 的比较函数：slices.SortFunc(s, xmac.Addr.Compare)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}

// Less 报告 a 在字典序上是否小于 b。
func (a Addr) Less(b Addr) bool {
	return a.Compare(b) < 0
}

// Next 返回下一个 MAC 地址（当前地址 +1）。
// 如果 a 是 ff:ff:ff:ff:ff:ff，返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	if a.IsBroadcast() {
		return Addr{}, ErrOverflow
	}
	return AddrFromUint64(a.Uint64() + 1), nil
}

// Prev 返回前一个 MAC 地址（当前地址 -1）。
// 如果 a 是 00:00:00:00:00:00，返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	if a.IsZero() {
		return Addr{}, ErrUnderflow
	}
	return AddrFromUint64(a.Uint64() - 1), nil
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}
