package strfn_test

import (
	"fmt"

	"github.com/hasbyte1/go-sequences/sequence"
	"github.com/hasbyte1/go-sequences/strfn"
)

func ExampleToUpperCase() {
	names := sequence.New("ted", "mary")
	fmt.Println(sequence.Collect(names, strfn.ToUpperCase()))
	// Output: [TED MARY]
}

func ExampleSubString() {
	initials := sequence.Collect(sequence.New("bob", "sally"), strfn.SubString(0, 1))
	fmt.Println(initials)
	// Output: [b s]
}

func ExampleToPrimitiveInt() {
	parsed := sequence.New("4", "8", "15").CollectInt(strfn.ToPrimitiveInt())
	fmt.Println(parsed, parsed.Sum())
	// Output: [4 8 15] 27
}

func ExampleLength() {
	fmt.Println(strfn.Length())
	fmt.Println(strfn.Length().IntValueOf("hello"))
	// Output:
	// string.length()
	// 5
}
