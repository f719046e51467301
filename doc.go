// Package xmac 提供 EUI-48/MAC-48 地址的值类型表示、解析与格式化。
//
// xmac 是一个纯值类型库：不做网络操作、不做 I/O、不维护任何状态。
// 核心类型 [Addr] 提供：
//
//   - 多格式解析（冒号、短线、点分 Cisco 风格、可选 0x 前缀的无分隔符）
//   - 多格式输出（[FormatColon], [FormatDash], [FormatDot], [FormatBare],
//     [FormatHex] 及对应 Upper 变体）
//   - 全序比较（[Addr.Compare]、[Addr.Less]）与可比较值语义（== 和 map key）
//   - 地址属性判断（单播/多播、本地/全局管理、零地址/广播）
//   - JSON/Text/Binary/SQL/YAML 序列化支持
//   - 地址运算与区间迭代（[Addr.Next]、[Addr.Prev]、[Range]）
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xmac.Parse("12:34:56:AB:CD:EF")
//	fmt.Println(addr.String())                       // 12:34:56:ab:cd:ef
//	fmt.Println(addr.FormatString(xmac.FormatDash))  // 12-34-56-ab-cd-ef
//	fmt.Println(addr.FormatString(xmac.FormatDot))   // 1234.56ab.cdef
//	fmt.Println(addr.FormatString(xmac.FormatHex))   // 0x123456abcdef
//
// 排序和去重：
//
//	slices.SortFunc(addrs, xmac.Addr.Compare)
//	seen := map[xmac.Addr]bool{}
//
// JSON 序列化：
//
//	type Asset struct {
//	    MAC xmac.Addr `json:"mac"`
//	}
//	json.Marshal(Asset{MAC: addr})  // {"mac":"12:34:56:ab:cd:ef"}
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 仅支持 EUI-48（6 字节），不支持 EUI-64（8 字节）
//   - 规范格式为小写冒号分隔（与 [net.HardwareAddr.String] 一致），
//     大写输出通过 Format 的 Upper 变体获得
//   - [FormatHex] 输出固定携带 0x 前缀；无前缀形式用 [FormatBare]
//   - 全部 2^48 个取值都是合法地址。零值 Addr{} 就是零地址
//     00:00:00:00:00:00，可正常格式化、比较、序列化；
//     不存在"无效地址"状态，判断零地址用 [Addr.IsZero]
//   - [Parse] 严格匹配文档化的四种记法：不去除首尾空白、不接受混合
//     分隔符、不接受分组长度不符的输入。需要宽松输入的调用方应在
//     调用前自行规整
//
// # 错误处理
//
// 仅解析与反序列化会失败，预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xmac.Parse("12:34:56")
//	if errors.Is(err, xmac.ErrInvalidLength) {
//	    // 分组数量或长度错误
//	}
//
// 从原始字节构造（[AddrFrom6]）与所有格式化操作都是全函数，不会失败。
//
// # 平台要求
//
// 区间迭代（[Range]、[RangeN]、[RangeReverse]）使用 Go 1.25+ 的
// [iter.Seq] 迭代器特性，最低要求与项目 go.mod 一致。
package xmac
