package xmac

import "iter"

// Range 返回从 from 到 to（含两端）递增的 MAC 地址迭代器。
// 如果 from > to，返回空迭代器。
//
// 示例：
//
//	from := xmac.MustParse("00:00:00:00:00:01")
//	to := xmac.MustParse("00:00:00:00:00:05")
//	for addr := range xmac.Range(from, to) {
//	    fmt.Println(addr)
//	}
func Range(from, to Addr) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}
		current := from
		for {
			if !yield(current) {
				return
			}
			if current == to {
				return
			}
			next, err := current.Next()
			if err != nil {
				// current == to 已提前返回，仅在终止条件被改动时可达
				return
			}
			current = next
		}
	}
}

// RangeN 返回从 start 开始的 n 个连续 MAC 地址的迭代器。
// 如果 n <= 0，返回空迭代器；到达地址空间上界时提前终止。
func RangeN(start Addr, n int) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		current := start
		for remaining := n; remaining > 0; remaining-- {
			if !yield(current) {
				return
			}
			next, err := current.Next()
			if err != nil {
				return
			}
			current = next
		}
	}
}

// RangeReverse 返回从 to 到 from（含两端）递减的 MAC 地址迭代器。
// 如果 from > to，返回空迭代器。
func RangeReverse(from, to Addr) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if from.Compare(to) > 0 {
			return
		}
		current := to
		for {
			if !yield(current) {
				return
			}
			if current == from {
				return
			}
			prev, err := current.Prev()
			if err != nil {
				// current == from 已提前返回，仅在终止条件被改动时可达
				return
			}
			current = prev
		}
	}
}

// RangeCount 返回从 from 到 to（含两端）的地址数量。
// 如果 from > to，返回 0。返回 uint64 以覆盖完整的 2^48 地址空间。
func RangeCount(from, to Addr) uint64 {
	if from.Compare(to) > 0 {
		return 0
	}
	return to.Uint64() - from.Uint64() + 1
}
