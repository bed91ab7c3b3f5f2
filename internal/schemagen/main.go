package main

import (
	"flag"
	"log"
	"os"

	"github.com/macropower/termprofile/pkg/schema"
)

var outFile = flag.String("o", "profile.schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	jsData, err := schema.Generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	_, err = schema.NewValidator(jsData)
	if err != nil {
		log.Fatalf("compile JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, append(jsData, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
