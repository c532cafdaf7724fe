package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Oe2tam/QLcs/suffixtree"
)

const version = "1.0.0"

func main() {

	var (
		configFile  string
		minLength   int
		fromFiles   bool
		dotFile     string
		showVersion bool
	)

	flag.StringVar(&configFile, "c", "", "Look for a qlcs toml-formatting config file in this directory")
	flag.IntVar(&minLength, "m", 0, "Minimum common substring length (overrides the config file)")
	flag.BoolVar(&fromFiles, "f", false, "Treat arguments as input files, one string per line, grouped in one class per file")
	flag.StringVar(&dotFile, "dot", "", "Write a graphviz dump of the built tree to this file")
	flag.BoolVar(&showVersion, "V", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("qlcs " + version)
		return
	}

	loadSettings(configFile)
	initLogger()

	if minLength <= 0 {
		minLength = settings.Search.MinLength
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: qlcs [-c config] [-m length] [-f] [-dot file] [class=]input ...")
		os.Exit(2)
	}

	tree := suffixtree.New()

	if fromFiles {
		for _, file := range flag.Args() {
			inputs, err := readInputs(file)
			if err != nil {
				log.Errorf("Can't read inputs from %s: %s", file, err)
				os.Exit(1)
			}
			for _, input := range inputs {
				appendOrDie(tree, input, file)
			}
		}
	} else {
		for _, arg := range flag.Args() {
			classID, input := splitClassArg(arg)
			appendOrDie(tree, input, classID)
		}
	}

	log.Debugf("built tree over %d strings", tree.StringCount())

	if dotFile != "" {
		if err := os.WriteFile(dotFile, []byte(tree.Graphviz()), 0644); err != nil {
			log.Errorf("Can't write graphviz dump to %s: %s", dotFile, err)
			os.Exit(1)
		}
		log.Infof("graphviz dump written to %s", dotFile)
	}

	result, err := tree.FindCommonSubstrings(minLength)
	if err != nil {
		log.Errorf("Search failed: %s", err)
		os.Exit(1)
	}

	printResult(result)
}

func appendOrDie(tree *suffixtree.Tree, input, classID string) {
	if err := tree.AppendString(input, classID); err != nil {
		log.Errorf("Can't append %q: %s", input, err)
		os.Exit(1)
	}
}

func printResult(result map[string][][]int) {
	substrings := make([]string, 0, len(result))
	for s := range result {
		substrings = append(substrings, s)
	}
	sort.Strings(substrings)

	for _, s := range substrings {
		fmt.Printf("%s\t%v\n", s, result[s])
	}
}
