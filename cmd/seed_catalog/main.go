// Command seed_catalog writes a fresh comic.csv with a small sample catalog.
// Any existing file at the target path is replaced.
package main

import (
	"flag"
	"fmt"
	"os"

	"comic-collector/comics"
)

type seedComic struct {
	title     string
	author    string
	publisher string
	price     int
	kind      string
}

var sampleCatalog = []seedComic{
	{"Watchmen", "Alan Moore", "DC", 5000, "comic"},
	{"The Dark Knight Returns", "Frank Miller", "DC", 6000, "superheroes"},
	{"Maus", "Art Spiegelman", "Pantheon", 7500, "graphic-novel"},
	{"Akira Vol. 1", "Katsuhiro Otomo", "Kodansha", 8000, "manga"},
	{"Saga Vol. 1", "Brian K. Vaughan", "Image", 4500, "science-fiction"},
	{"Persepolis", "Marjane Satrapi", "L'Association", 5500, "graphic-novel"},
	{"All-Star Superman", "Grant Morrison", "DC", 5200, "superheroes"},
	{"Transmetropolitan Vol. 1", "Warren Ellis", "Vertigo", 4800, "science-fiction"},
}

func main() {
	path := flag.String("catalog", "comic.csv", "path of the catalog CSV file to write")
	flag.Parse()

	minter := comics.NewCodeMinter()
	catalog := make([]comics.Comic, 0, len(sampleCatalog))
	for _, s := range sampleCatalog {
		code, err := minter.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error minting code: %v\n", err)
			os.Exit(1)
		}
		catalog = append(catalog, comics.Comic{
			Code:      code,
			Title:     s.title,
			Author:    s.author,
			Publisher: s.publisher,
			Price:     s.price,
			Kind:      s.kind,
		})
	}

	store := comics.NewCatalogStore(*path)
	if err := store.Save(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d comics to %s:\n", len(catalog), *path)
	for _, c := range catalog {
		fmt.Printf("  %-10s %-30s %-20s %6d  %s\n", c.Code, c.Title, c.Author, c.Price, c.Kind)
	}
}
