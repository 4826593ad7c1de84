package bitstream_test

import (
	"fmt"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
)

func ExampleEncode() {
	// "A" is code point 65: 01000001 in eight-bit binary
	bits, _ := bitstream.Encode("A")
	fmt.Println(bits)

	// Characters concatenate in input order
	bits, _ = bitstream.Encode("AB")
	fmt.Println(bits.Grouped(8))
	// Output:
	// 01000001
	// 01000001 01000010
}

func ExampleDecode() {
	bits, _ := bitstream.Encode("hi")
	text, _ := bitstream.Decode(bits)
	fmt.Println(text)
	// Output:
	// hi
}

func ExampleParse() {
	// Whitespace separators are allowed anywhere
	bits, _ := bitstream.Parse("0100 0001")
	fmt.Println(len(bits), "bits")
	fmt.Println(bits)
	// Output:
	// 8 bits
	// 01000001
}

func ExampleSequence_Grouped() {
	bits, _ := bitstream.Parse("110010101111")
	fmt.Println(bits.Grouped(4))
	// Output:
	// 1100 1010 1111
}
