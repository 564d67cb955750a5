// Command spritegen writes the procedural placeholder sprites as PNG files.
// The output directory can be passed to the game with -assets and the
// files replaced one by one with real art.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"slices"

	"spacehunt/sprites"
)

func writePNG(dir string, id sprites.ID) error {
	spec, err := sprites.Lookup(id)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, string(id)+".png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, sprites.Paint(spec)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func main() {
	dir := flag.String("out", "assets", "output directory")
	only := flag.String("only", "", "write a single sprite id")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	ids := sprites.All()
	if *only != "" {
		ids = []sprites.ID{sprites.ID(*only)}
	}
	slices.Sort(ids)

	for _, id := range ids {
		if err := writePNG(*dir, id); err != nil {
			log.Fatalf("Failed to write sprite: %v", err)
		}
	}
	log.Printf("Wrote %d sprites to %s", len(ids), *dir)
}
