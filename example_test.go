// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv_test

import (
	"fmt"
	"strings"

	"github.com/trim21/strv"
)

func ExampleView_Sub() {
	v := strv.FromString("...THIS...")
	fmt.Printf("%s\n", v.Sub(3, 7))
	// Output: THIS
}

func ExampleView_SplitFirst() {
	date := strv.FromString("2023/07/03")
	slash := strv.FromString("/")

	for date.IsValid() {
		fmt.Printf("%s\n", date.SplitFirst(slash))
	}
	// Output:
	// 2023
	// 07
	// 03
}

func ExampleView_Find() {
	hay := strv.FromString("First name: FRED, Second name: SMITH")
	needle := strv.FromString("name: ")

	first := hay.Find(needle)
	last := hay.FindLast(needle)

	rest := hay
	rest.SplitBefore(first)
	fmt.Printf("%s\n", rest.SplitAt(11))

	rest = hay
	rest.SplitBefore(last)
	fmt.Printf("%s\n", rest.SplitAt(11))
	// Output:
	// name: FRED,
	// name: SMITH
}

func ExampleView_SplitLine() {
	src := strv.FromString("A\r\nB\rC\n\nD\n")

	var st strv.LineState
	for {
		line := src.SplitLine(&st)
		if !line.IsValid() {
			break
		}

		fmt.Printf("%q\n", line)
	}
	// Output:
	// "A"
	// "B"
	// "C"
	// ""
	// "D"
}

func ExampleLineScanner() {
	r := strings.NewReader("alpha\nbeta\r\ngamma")

	s := strv.NewLineScanner(r, nil)
	for s.Scan() {
		fmt.Println(s.Text())
	}
	// Output:
	// alpha
	// beta
	// gamma
}
