// Command objtool is a small driver over the objscene library: it loads an
// OBJ (and its companion MTL, when present), prints a summary, and
// optionally re-exports it — the same load/inspect/run shape gopher3D's own
// runtime/main.go follows for a scene, just without the rendering step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objscene"
)

func main() {
	in := flag.String("in", "", "path to the .obj file to load (required)")
	out := flag.String("out", "", "path to re-export the loaded scene to (optional)")
	triangulate := flag.Bool("triangulate", false, "export faces as triangles only")
	workers := flag.Int("workers", 0, "worker pool size (0 uses runtime.NumCPU())")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "objtool: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	imp := objscene.NewImporter(objscene.WithConcurrency(*workers))
	scene, res := imp.Load(*in)
	if !res.OK() {
		logger.Log.Errorw("objtool: failed to load scene", "path", *in, "state", res.State.String(), "error", res.Err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		logger.Log.Warnw("objtool: load warning", "error", w)
	}

	printSummary(*in, scene)

	if *out == "" {
		return
	}

	exp := objscene.NewExporter(objscene.WithConcurrency(*workers))
	if *triangulate {
		exp.MeshFlags |= mesh.ExportTriangulated
	}
	if ok, err := exp.Save(*out, scene); !ok {
		logger.Log.Errorw("objtool: failed to save scene", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

func printSummary(path string, scene *objscene.Scene) {
	var faces, vertices int
	for _, obj := range scene.Objects {
		if m := obj.MeshAttachment(); m != nil {
			faces += len(m.Model.Faces)
			vertices += len(m.Model.Vertices)
		}
	}
	fmt.Printf("%s: %d objects, %d faces, %d vertices, %d materials\n",
		path, len(scene.Objects), faces, vertices, len(scene.Materials))
}
