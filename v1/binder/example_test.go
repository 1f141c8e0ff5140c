package binder_test

import (
	"fmt"

	"github.com/mirkobrombin/go-binder/v1/binder"
)

type settings struct {
	volume *binder.Cell[float32]
}

func slider(_ string, v *float32) {
	*v += 0.25
}

func Example() {
	s := &settings{volume: binder.New(float32(0.5), binder.WithName("volume"))}

	s.volume.With(func(v *float32) {
		slider("volume", v)
	})

	h := s.volume.Bind()
	defer h.Release()
	fmt.Println(*h.Get())
	// Output: 0.75
}

func ExampleCell_TryBind() {
	c := binder.New("title")
	h := c.Bind()

	if _, err := c.TryBind(); err != nil {
		fmt.Println(err)
	}
	h.Release()

	h, err := c.TryBind()
	if err == nil {
		fmt.Println(h.Load())
		h.Release()
	}
	// Output:
	// binder.Handle[string]: tried to bind a cell that was already bound
	// title
}
