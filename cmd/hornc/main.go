package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/annotations"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/lower"
	"github.com/wbrown/janus-hornc/hornc/ram"
	"github.com/wbrown/janus-hornc/hornc/storage"
)

func main() {
	var profile bool
	var verbose bool
	var dbPath string
	var help bool

	flag.BoolVar(&profile, "profile", false, "attach profiling annotations and relation timers")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode (show lowering annotations and debug logs)")
	flag.StringVar(&dbPath, "db", "", "persist the interned symbol table to this path")
	flag.BoolVar(&help, "h", false, "show help")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Lowers built-in demo Datalog programs into RAM operation trees.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                    # Lower and print all demo programs\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -profile           # Include profiling timers in the output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db symbols.db     # Persist the symbol table afterwards\n", os.Args[0])
		os.Exit(0)
	}
	flag.Parse()

	if help {
		flag.Usage()
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Collect events even when quiet so the version table can render.
	handler := func(annotations.Event) {}
	if verbose {
		formatter := annotations.NewOutputFormatter(os.Stderr)
		handler = formatter.Handle
	}
	collector := annotations.NewCollector(handler)
	opts := &lower.Options{Collector: collector}

	st := hornc.NewSymbolTable()

	header := color.New(color.FgCyan, color.Bold)
	for _, d := range demos() {
		header.Printf("=== %s ===\n", d.name)
		if err := runDemo(st, d, profile, opts); err != nil {
			log.Fatalf("lowering %s: %v", d.name, err)
		}
		fmt.Println()
	}

	if rows := annotations.VersionRowsFromEvents(collector.Events()); len(rows) > 0 {
		header.Println("=== recursive clause versions ===")
		fmt.Println(annotations.RenderVersionTable(rows))
	}

	if dbPath != "" {
		if err := persistSymbols(st, dbPath, collector); err != nil {
			log.Fatalf("persisting symbols: %v", err)
		}
		fmt.Printf("persisted %d symbols to %s\n", st.Size(), dbPath)
	}
}

func runDemo(st *hornc.SymbolTable, d demo, profile bool, opts *lower.Options) error {
	ctx := lower.NewProgramContext()
	if profile {
		ctx.EnableProfiling()
	}
	for _, rel := range d.relations {
		if err := ctx.RegisterRelation(rel); err != nil {
			return err
		}
	}

	for _, c := range d.clauses {
		fmt.Println(c)
		stmts, err := lowerDemoClause(ctx, st, c, d.scc, opts)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			fmt.Println(stmt)
		}
	}
	return nil
}

// lowerDemoClause picks recursive lowering when the clause's body touches
// its own SCC.
func lowerDemoClause(ctx lower.Context, st *hornc.SymbolTable, c *ast.Clause, scc map[string]bool, opts *lower.Options) ([]ram.Statement, error) {
	if scc != nil && clauseTouchesSCC(c, scc) {
		return lower.LowerClauseVersions(ctx, st, c, scc, opts)
	}
	stmt, err := lower.LowerClause(ctx, st, c, opts)
	if err != nil {
		return nil, err
	}
	return []ram.Statement{stmt}, nil
}

func clauseTouchesSCC(c *ast.Clause, scc map[string]bool) bool {
	for _, a := range c.BodyAtoms() {
		if scc[a.Name.String()] {
			return true
		}
	}
	return false
}

func persistSymbols(st *hornc.SymbolTable, path string, collector *annotations.Collector) error {
	store, err := storage.OpenSymbolStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Persist(st); err != nil {
		return err
	}
	collector.Add(annotations.Event{
		Name: annotations.SymbolsPersisted,
		Data: map[string]interface{}{"count": st.Size(), "path": path},
	})
	return nil
}
