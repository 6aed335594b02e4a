package main

import (
	"fmt"
	"os"

	"github.com/storozhukBM/figures/lib/figure"
	"github.com/storozhukBM/figures/lib/seq"
)

func main() {
	numbers := seq.New[int]()
	for i := 0; i < 10; i++ {
		numbers.Push(i * i)
		fmt.Printf("%v %+v\n", numbers, numbers.Stats())
	}
	if err := numbers.Erase(3); err != nil {
		fmt.Println(err)
	}
	if _, err := numbers.Get(numbers.Len()); err != nil {
		fmt.Printf("expected error: %v\n", err)
	}
	fmt.Printf("%v\n", numbers.Slice())

	figures := seq.New[figure.Figure[int]]()
	figures.Push(figure.NewRhombus(figure.Pt(0, 3), figure.Pt(4, 0), figure.Pt(0, -3), figure.Pt(-4, 0)))
	figures.Push(figure.NewRegularHexagon(figure.Pt(10, 10), 100))
	if err := figure.PrintAll[int](os.Stdout, figures); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("total area: %v\n", figure.TotalArea(figures))
}
