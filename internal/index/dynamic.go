package index

import (
	"strings"

	"github.com/zskulcsar/code-duplication-scanner/internal/pyparse"
	"github.com/zskulcsar/code-duplication-scanner/internal/symbol"
)

// collectDynamicSites finds every getattr/setattr/hasattr call anywhere in
// the file, regardless of scope, recording the receiver expression text and
// the literal name argument when it is a plain (non-interpolated) string.
func (b *builder) collectDynamicSites(root *pyparse.Node) {
	root.Walk(func(n *pyparse.Node) bool {
		if n.Kind() != "call" {
			return true
		}
		fn := n.ChildByField("function")
		if fn == nil || fn.Kind() != "identifier" {
			return true
		}

		var kind symbol.DynamicSiteKind
		switch fn.Text() {
		case "getattr":
			kind = symbol.DynamicGet
		case "setattr":
			kind = symbol.DynamicSet
		case "hasattr":
			kind = symbol.DynamicHas
		default:
			return true
		}

		args := n.ChildByField("arguments")
		if args == nil {
			return true
		}
		argNodes := args.Children()
		if len(argNodes) < 2 {
			return true
		}

		site := DynamicSite{
			File:         b.file,
			Span:         n.Span(),
			Kind:         kind,
			ReceiverExpr: argNodes[0].Text(),
		}
		if lit, litSpan, ok := stringLiteralValue(argNodes[1]); ok {
			site.NameLiteral = &lit
			site.NameLiteralSpan = litSpan
		}
		b.idx.DynamicSites = append(b.idx.DynamicSites, site)
		return true
	})
}

// stringLiteralValue reports the unquoted contents of n when it is a plain
// string literal with no interpolation fragments.
func stringLiteralValue(n *pyparse.Node) (string, pyparse.Span, bool) {
	if n == nil || n.Kind() != "string" {
		return "", pyparse.Span{}, false
	}
	for _, c := range n.Children() {
		if c.Kind() == "interpolation" {
			return "", pyparse.Span{}, false
		}
	}
	return unquotePythonString(n.Text()), n.Span(), true
}

func unquotePythonString(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	body := raw[i:]
	if len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, "'''")) {
		return body[3 : len(body)-3]
	}
	if len(body) >= 2 {
		return body[1 : len(body)-1]
	}
	return body
}
