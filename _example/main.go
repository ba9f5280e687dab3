package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/filtex"
	"github.com/hupe1980/filtex/listmatcher"
	"github.com/hupe1980/filtex/value"
)

func main() {
	ctx := filtex.NewExecutionContext()

	// Populate a list of blocked user agents.
	blocked := ctx.RegisterList("blocked-agents", value.KindBytes, &listmatcher.SetList{}).(*listmatcher.SetMatcher)
	blocked.Insert(value.FromString("curl"))
	blocked.Insert(value.FromString("python-requests"))

	// Compile predicates once, evaluate many times.
	isGet := filtex.Contains([]byte("GET"))
	isBlocked := filtex.InList("blocked-agents")

	requests := []struct {
		line  string
		agent string
	}{
		{"GET /index.html HTTP/1.1", "Mozilla/5.0"},
		{"POST /login HTTP/1.1", "curl"},
		{"GET /robots.txt HTTP/1.1", "curl"},
	}

	for _, req := range requests {
		// Borrow avoids copying request bytes into the engine.
		line := value.BytesValue(value.Borrow([]byte(req.line)))
		agent := value.BytesValue(value.FromString(req.agent))

		fmt.Printf("%-30s agent=%-16s get=%-5v blocked=%v\n",
			req.line, req.agent, isGet.Compare(line, ctx), isBlocked.Compare(agent, ctx))
	}

	// Persist list state and restore it into a second context.
	var buf bytes.Buffer
	if err := ctx.MarshalState(&buf); err != nil {
		log.Fatal(err)
	}

	restored := filtex.NewExecutionContext()
	restored.RegisterList("blocked-agents", value.KindBytes, &listmatcher.SetList{})
	if err := restored.UnmarshalState(&buf); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("restored context blocks curl: %v\n",
		isBlocked.Compare(value.BytesValue(value.FromString("curl")), restored))
}
