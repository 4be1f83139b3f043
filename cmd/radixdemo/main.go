// Command radixdemo is a small external collaborator exercising the core
// library end to end: it builds a radix-26 dictionary tree from word
// arguments (or a built-in word list), prints it, then serializes a binary
// demo tree through the WORM builder's canonical dry-run/real two-pass
// sequence and reads a value back out of the resulting buffer. It mirrors
// bart/cmd's role — a thin main() loading data and printing results via
// log/fmt, nothing the core package depends on.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/axtree/radix"
	"github.com/axtree/radix/worm"
)

var defaultWords = []string{"cat", "cart", "car", "dog"}

func main() {
	log.SetFlags(0)
	dump := flag.Bool("dump", true, "print the dictionary tree after loading")
	flag.Parse()

	words := flag.Args()
	if len(words) == 0 {
		words = defaultWords
	}

	tree := buildDictionary(words)
	if *dump {
		if err := tree.Fprint(os.Stdout); err != nil {
			log.Fatalf("radixdemo: Fprint: %v", err)
		}
	}

	buf, meta := buildWorm()
	wt, err := worm.NewTreeFromMetadata(buf, meta, 16)
	if err != nil {
		log.Fatalf("radixdemo: NewTreeFromMetadata: %v", err)
	}
	c := wt.NewLookupCursor()
	path := radix.NewPath(2, 16)
	for _, d := range []uint8{1, 1, 1, 1, 1, 1, 0} {
		var err error
		path, err = path.PushBack(d)
		if err != nil {
			log.Fatalf("radixdemo: PushBack: %v", err)
		}
		c.GoChild(d)
	}
	v, depth, ok := c.CoveringNodeValueRO()
	fmt.Printf("worm lookup at %s: value=%d depth=%d found=%v\n", path, v, depth, ok)
}

// buildDictionary inserts words, each mapped letter-by-letter to digits in
// [0,26) (a=0 .. z=25), into a radix-26 tree of max depth 10, the same
// encoding spec.md's dictionary end-to-end scenario uses.
func buildDictionary(words []string) *radix.Tree[bool] {
	tree := radix.NewPointerTree[bool](26, 10)
	for _, w := range words {
		lower := strings.ToLower(w)
		cur := tree.NewCursor()
		for i := 0; i < len(lower); i++ {
			d := lower[i] - 'a'
			if d > 25 {
				log.Fatalf("radixdemo: word %q: byte %q outside a-z", w, lower[i])
			}
			cur.GoChild(d)
		}
		cur.AddNode().Set(true)
	}
	return tree
}

// buildWorm mirrors spec.md's WORM round-trip scenario: a depth-16 binary
// tree with a value at the root and one at path [1,1,1,1,1,1,0], built via
// the canonical dry-run-then-real two-pass sequence. The root's only
// descendant hangs off its right (digit-1) slot; the leaf's parent hangs
// its only child off the left (digit-0) slot.
func buildWorm() ([]byte, worm.Metadata) {
	insertDemoNodes := func(b *worm.Builder) error {
		root := radix.NewPath(2, 16)
		if err := b.AddNode(root, true, 37, false, true); err != nil {
			return err
		}
		branch := root
		for i := 0; i < 6; i++ {
			var err error
			branch, err = branch.PushBack(1)
			if err != nil {
				return err
			}
		}
		if err := b.AddNode(branch, false, 0, true, false); err != nil {
			return err
		}
		leaf, err := branch.PushBack(0)
		if err != nil {
			return err
		}
		if err := b.AddNode(leaf, true, 12348, false, false); err != nil {
			return err
		}
		return b.Finish()
	}

	dry := worm.NewBuilder()
	if err := dry.Start(worm.BuildOptions{StatsOnly: true, OffsetSize: 8, ValueSize: 8, LittleEndian: false}); err != nil {
		log.Fatalf("radixdemo: worm dry-run start: %v", err)
	}
	if err := insertDemoNodes(dry); err != nil {
		log.Fatalf("radixdemo: worm dry-run build: %v", err)
	}
	stats := dry.TreeStats()

	offsetSize := stats.MinBytesForOffset()
	valueSize := stats.MinBytesForValue()

	real := worm.NewBuilder()
	if err := real.Start(worm.BuildOptions{OffsetSize: offsetSize, ValueSize: valueSize, LittleEndian: false}); err != nil {
		log.Fatalf("radixdemo: worm build start: %v", err)
	}
	if err := insertDemoNodes(real); err != nil {
		log.Fatalf("radixdemo: worm build: %v", err)
	}
	buf := real.ExtractBuffer()
	codec := worm.NewUintCodec(valueSize, false)
	return buf, worm.Metadata{OffsetSize: offsetSize, ValueSize: valueSize, LittleEndian: false, CodecID: codec.ID()}
}
