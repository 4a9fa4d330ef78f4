package transmute_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/segmentio/transmute"
)

func ExampleMany() {
	buf := transmute.SliceToBytes([]uint16{1, 2})
	buf = append(buf[:len(buf):len(buf)], 0xFF)

	values, err := transmute.ManyPermissive[uint16](buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(values)

	_, err = transmute.Many[uint16](buf, transmute.AllOrNothing)
	fmt.Println(err)
	// Output:
	// [1 2]
	// excess bytes: required=4 actual=5
}

func ExampleLayout_Vec() {
	layout := transmute.Of[uint32]()

	buf := layout.MakeBytes(24)[:16]
	values, err := layout.Vec(&buf, transmute.Pedantic)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(values), cap(values), buf == nil)

	buf = layout.VecToBytes(&values)
	fmt.Println(len(buf), cap(buf), values == nil)
	// Output:
	// 4 6 true
	// 16 24 true
}

func ExampleDeclared() {
	points := []point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	buf := transmute.SliceToBytes(points)

	values, err := transmute.Declared[point]().Many(buf, transmute.Pedantic)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(values)
	// Output:
	// [{1 2} {3 4}]
}

func ExampleCheckAlignment() {
	buf := transmute.Of[uint64]().MakeBytes(16)

	err := transmute.CheckAlignment[uint64](buf[3:])

	var unaligned *transmute.UnalignedError
	if errors.As(err, &unaligned) {
		fmt.Println("discard", unaligned.Offset, "bytes")
	}
	// Output:
	// discard 5 bytes
}
