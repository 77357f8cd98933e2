package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/karlkauc/xmledit/dom"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: xmlfmt <xml-file>")
		os.Exit(1)
	}

	xmlFile := os.Args[1]

	data, err := os.ReadFile(xmlFile)
	if err != nil {
		logrus.WithError(err).Fatalf("failed to read %s", xmlFile)
	}

	root, err := dom.DecodeBytes(data)
	if err != nil {
		logrus.WithError(err).Fatalf("failed to parse %s", xmlFile)
	}

	fmt.Println(root.Serialize(0))
}
