package linecode_test

import (
	"fmt"
	"strings"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/linecode"
)

func ExampleGenerate() {
	bits, _ := bitstream.Encode("A")
	w, _ := linecode.Generate(bits, linecode.NRZL)

	fmt.Println("bits:", bits)
	fmt.Println("vertices:", len(w.Vertices))
	fmt.Println("level during bit 1:", w.LevelAt(1.5))
	// Output:
	// bits: 01000001
	// vertices: 12
	// level during bit 1: high
}

func ExampleGenerate_ami() {
	// 1-bits alternate polarity; 0-bits sit at zero
	bits, _ := bitstream.Parse("0101101")
	w, _ := linecode.Generate(bits, linecode.AMI)

	var levels []string
	for i := 0; i < w.BitCount; i++ {
		levels = append(levels, w.LevelAt(float64(i)+0.5).String())
	}
	fmt.Println(strings.Join(levels, " "))
	// Output:
	// zero high zero low high zero low
}

func ExampleParseScheme() {
	s, _ := linecode.ParseScheme("manchester")
	fmt.Println(s.Name())
	fmt.Println(s.Description())
	// Output:
	// Manchester
	// A transition in the middle of every bit: upward for 1, downward for 0.
}

func ExampleWithInitialPolarity() {
	// CMI defaults to a negative start; override it so the first 1-bit
	// renders high instead of on the zero rail.
	bits, _ := bitstream.Parse("1")
	w, _ := linecode.Generate(bits, linecode.CMI, linecode.WithInitialPolarity(1))
	fmt.Println(w.LevelAt(0.5))
	// Output:
	// high
}
