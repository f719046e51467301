package xmac

import "github.com/cespare/xxhash/v2"

// Sum64 返回地址 6 个字节的 xxHash64 摘要。
//
// Addr 本身可比较，直接作为 map key 时不需要显式哈希；
// Sum64 面向需要数值哈希的场景：分片结构的槽位选择、
// 一致性采样、布隆过滤器等。相等的地址产生相同的摘要，
// 且结果在进程间确定。
func (a Addr) Sum64() uint64 {
	return xxhash.Sum64(a.bytes[:])
}
