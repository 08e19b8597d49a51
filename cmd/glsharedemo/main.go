// Command glsharedemo walks through share-group name management.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glshare"
	"github.com/gogpu/glshare/backend"

	// Register the GPU-backed name backend.
	_ "github.com/gogpu/glshare/backend/wgpu"
)

func main() {
	var (
		backendName = flag.String("backend", backend.BackendSoftware, "name backend to use")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		glshare.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b := backend.Get(*backendName)
	if b == nil {
		log.Fatalf("unknown backend %q (available: %v)", *backendName, backend.Available())
	}
	if err := b.Init(); err != nil {
		log.Fatalf("backend init: %v", err)
	}
	defer b.Close()

	mgr := glshare.NewManager(b)

	// Two guest contexts sharing one namespace, one isolated.
	grpA := mgr.CreateShareGroup(1)
	mgr.AttachShareGroup(2, 1)
	grpC := mgr.CreateShareGroup(3)

	// A texture generated through context 1 is visible through context 2.
	tex := grpA.GenName(glshare.ObjectTexture, 0, true)
	global := grpA.Global(glshare.ObjectTexture, tex)
	log.Printf("context 1: texture local=%d global=%d", tex, global)

	grpB := mgr.ShareGroup(2)
	log.Printf("context 2 sees local %d for global %d", grpB.Local(glshare.ObjectTexture, global), global)
	log.Printf("context 3 sees local %d (isolated)", grpC.Local(glshare.ObjectTexture, global))

	// Shared texture lifetime: one more user, then both release.
	log.Printf("refcount after acquire: %d", grpB.IncTextureRef(global))
	log.Printf("refcount after release: %d", grpB.DecTextureRef(global))
	log.Printf("refcount after final release: %d (host object freed)", grpA.DecTextureRef(global))

	mgr.DeleteShareGroup(1)
	mgr.DeleteShareGroup(2)
	mgr.DeleteShareGroup(3)
}
