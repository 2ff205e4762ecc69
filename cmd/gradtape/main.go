// Package main provides a small demo of the gradtape engine: it builds a few
// tensors, composes them and prints the gradients produced by Backward.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/born-ml/gradtape/autodiff"
	"github.com/born-ml/gradtape/ndarray"
)

const version = "v0.0.1-dev"

var (
	flagExample    = flag.String("example", "add", "Example to run: add, diamond, broadcast or matmul.")
	flagSequential = flag.Bool("sequential", false, "Run batched matmul on a single goroutine.")
	flagVersion    = flag.Bool("version", false, "Print version and exit.")
)

var examples = map[string]func(){
	"add":       runAdd,
	"diamond":   runDiamond,
	"broadcast": runBroadcast,
	"matmul":    runMatMul,
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagVersion {
		fmt.Printf("gradtape %s\n", version)
		return
	}
	if *flagSequential {
		ndarray.SetParallelConfig(ndarray.SequentialConfig())
	}

	run, ok := examples[*flagExample]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown example %q\n", *flagExample)
		flag.Usage()
		os.Exit(2)
	}
	klog.V(1).Infof("running example %q", *flagExample)
	run()
}

func leaf(buf []int32, shape ndarray.Shape) *autodiff.Tensor[int32] {
	return autodiff.NewTensor(must.M1(ndarray.New(buf, shape)))
}

func backward(t *autodiff.Tensor[int32]) {
	if err := t.Backward(); err != nil {
		klog.Fatalf("backward failed: %+v", err)
	}
}

// runAdd computes c = a + b for two (3, 1) tensors.
func runAdd() {
	a := leaf([]int32{1, 2, 3}, ndarray.Shape{3, 1})
	b := leaf([]int32{4, 5, 6}, ndarray.Shape{3, 1})

	c := must.M1(a.Add(b))
	backward(c)

	fmt.Printf("c = %v\n", c.Data())
	fmt.Printf("Gradient of a: %v\n", a.Grad().Data())
	fmt.Printf("Gradient of b: %v\n", b.Grad().Data())
}

// runDiamond uses a tensor twice: b = a + a, so d(b)/d(a) = 2.
func runDiamond() {
	a := autodiff.NewTensor(ndarray.Ones[int32](ndarray.Shape{2, 3}))

	b := must.M1(a.Add(a))
	backward(b)

	fmt.Printf("b = %v\n", b.Data())
	fmt.Printf("Gradient of a: %v\n", a.Grad())
}

// runBroadcast adds a (1, 4) row to a (3, 4) matrix.
func runBroadcast() {
	a := leaf([]int32{1, 2, 3, 4}, ndarray.Shape{1, 4})
	b := autodiff.NewTensor(ndarray.Ones[int32](ndarray.Shape{3, 4}))

	c := must.M1(a.Add(b))
	backward(c)

	fmt.Printf("c = %v\n", c.Data())
	fmt.Printf("Gradient of a: %v\n", a.Grad())
	fmt.Printf("Gradient of b: %v\n", b.Grad())
}

// runMatMul multiplies a batch of matrices by a shared one.
func runMatMul() {
	a := ndarray.Ones[int32](ndarray.Shape{2, 2, 3})
	b := must.M1(ndarray.New([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ndarray.Shape{1, 3, 4}))

	c, err := a.MatMul(b)
	if err != nil {
		klog.Errorf("matmul failed: %+v", err)
		os.Exit(1)
	}
	fmt.Printf("a @ b = %v\n", c)
}
