package main

import (
	"fmt"
	"sync"

	"imm"
)

// Splits words into bytes on one goroutine and reassembles them on another.
func main() {
	words := []uint32{0xDEADBEEF, 0x00000001, 0x80000000, 0x12345678}
	bytesCh := make(chan [4]imm.U8)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, w := range words {
			v := imm.New(w)
			bytesCh <- [4]imm.U8{v.High8(), v.High16().Low8(), v.Low16().High8(), v.Low8()}
		}
		close(bytesCh)
	}()

	for b := range bytesCh {
		word := b[0].Concat8(b[1]).Concat8(b[2]).Concat8(b[3])
		fmt.Println(b[0], b[3], word)
	}
	wg.Wait()
}
