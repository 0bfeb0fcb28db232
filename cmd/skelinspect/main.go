// skelinspect prints the contents of skeleton archives: header, joint
// counts, the name table and the hierarchy as an indented tree.
package main

import (
	"flag"
	"fmt"
	"os"

	"ozz-skel-runtime/internal/archive"
	"ozz-skel-runtime/internal/skeleton"
)

func main() {
	metaOnly := flag.Bool("meta", false, "Stop after the archive header and joint metadata")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: skelinspect [-meta] skeleton.ozz ...")
		os.Exit(1)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := inspect(path, *metaOnly); err != nil {
			fmt.Fprintf(os.Stderr, "inspect %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(path string, metaOnly bool) error {
	a, err := archive.OpenPath(path)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== %s ===\n", path)
	fmt.Printf("tag=%q version=%d\n", a.Tag(), a.Version())

	meta, err := skeleton.ReadMeta(a, !metaOnly)
	if err != nil {
		return err
	}
	fmt.Printf("joints=%d soa=%d aligned=%d\n",
		meta.NumJoints, (meta.NumJoints+3)/4, (meta.NumJoints+3)&^3)

	if metaOnly || meta.NumJoints == 0 {
		return nil
	}

	s := skeleton.New(nil, meta.Parents, meta.Names)
	depths := make([]int, s.NumJoints())
	s.IterDepthFirst(-1, func(joint, parent int16) {
		indent := ""
		if parent != skeleton.NoParent {
			depths[joint] = depths[parent] + 1
			for i := 0; i < depths[joint]; i++ {
				indent += "  "
			}
		}
		name, _ := s.NameByJoint(joint)
		leaf := ""
		if s.IsLeaf(int(joint)) {
			leaf = " (leaf)"
		}
		fmt.Printf("%s[%d] %s parent=%d%s\n", indent, joint, name, parent, leaf)
	})
	return nil
}
