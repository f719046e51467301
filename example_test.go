package xmac_test

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/omeyang/xmac"
)

func ExampleParse() {
	// 四种记法解析为同一个值
	notations := []string{
		"12:34:56:ab:cd:ef", // 冒号格式
		"12-34-56-AB-CD-EF", // 短线格式（大写）
		"1234.56ab.cdef",    // 点格式（Cisco 风格）
		"0x123456ABCDEF",    // 0x 前缀无分隔符
	}

	for _, s := range notations {
		addr, err := xmac.Parse(s)
		if err != nil {
			fmt.Printf("Parse(%q) error: %v\n", s, err)
			continue
		}
		fmt.Printf("Parse(%q) = %s\n", s, addr)
	}

	// Output:
	// Parse("12:34:56:ab:cd:ef") = 12:34:56:ab:cd:ef
	// Parse("12-34-56-AB-CD-EF") = 12:34:56:ab:cd:ef
	// Parse("1234.56ab.cdef") = 12:34:56:ab:cd:ef
	// Parse("0x123456ABCDEF") = 12:34:56:ab:cd:ef
}

func ExampleAddr_FormatString() {
	addr := xmac.AddrFrom6([6]byte{0x12, 0x34, 0x56, 0xab, 0xcd, 0xef})

	fmt.Println("Colon:", addr.FormatString(xmac.FormatColon))
	fmt.Println("Dash:", addr.FormatString(xmac.FormatDash))
	fmt.Println("Dot:", addr.FormatString(xmac.FormatDot))
	fmt.Println("Bare:", addr.FormatString(xmac.FormatBare))
	fmt.Println("Hex:", addr.FormatString(xmac.FormatHex))
	fmt.Println("ColonUpper:", addr.FormatString(xmac.FormatColonUpper))
	fmt.Println("HexUpper:", addr.FormatString(xmac.FormatHexUpper))

	// Output:
	// Colon: 12:34:56:ab:cd:ef
	// Dash: 12-34-56-ab-cd-ef
	// Dot: 1234.56ab.cdef
	// Bare: 123456abcdef
	// Hex: 0x123456abcdef
	// ColonUpper: 12:34:56:AB:CD:EF
	// HexUpper: 0x123456ABCDEF
}

func ExampleAddr_Compare() {
	addrs := []xmac.Addr{
		xmac.Broadcast(),
		xmac.MustParse("00:1b:44:11:3a:b7"),
		xmac.Zero(),
	}

	slices.SortFunc(addrs, xmac.Addr.Compare)
	for _, addr := range addrs {
		fmt.Println(addr)
	}

	// Output:
	// 00:00:00:00:00:00
	// 00:1b:44:11:3a:b7
	// ff:ff:ff:ff:ff:ff
}

func ExampleAddr_MarshalJSON() {
	type asset struct {
		Name string    `json:"name"`
		MAC  xmac.Addr `json:"mac"`
	}

	data, _ := json.Marshal(asset{Name: "switch-1", MAC: xmac.MustParse("00:1b:44:11:3a:b7")})
	fmt.Println(string(data))

	// Output:
	// {"name":"switch-1","mac":"00:1b:44:11:3a:b7"}
}

func ExampleRangeN() {
	from := xmac.MustParse("00:00:00:00:00:fe")
	for addr := range xmac.RangeN(from, 3) {
		fmt.Println(addr)
	}

	// Output:
	// 00:00:00:00:00:fe
	// 00:00:00:00:00:ff
	// 00:00:00:00:01:00
}
