package rewrite

import "github.com/zskulcsar/code-duplication-scanner/internal/pyparse"

// visitDynamicCall handles getattr(obj, "name")/setattr(obj, "name",
// value)/hasattr(obj, "name"): the receiver and any trailing arguments
// (getattr's default, setattr's value) are ordinary expressions, but the
// name argument, when it is a plain string literal, is a dynamic usage
// site subject to the same ownership-gated rename policy as an attribute
// access.
func (fr *fileRewriter) visitDynamicCall(callee string, n *pyparse.Node, ctx scopeCtx) {
	args := n.ChildByField("arguments")
	if args == nil {
		return
	}
	argNodes := args.Children()
	if len(argNodes) == 0 {
		return
	}
	receiver := argNodes[0]
	fr.visitExpr(receiver, ctx)

	if len(argNodes) < 2 {
		return
	}
	fr.visitDynamicNameArg(receiver, argNodes[1], ctx)

	for i := 2; i < len(argNodes); i++ {
		fr.visitExpr(argNodes[i], ctx)
	}
}

func (fr *fileRewriter) visitDynamicNameArg(receiver, nameArg *pyparse.Node, ctx scopeCtx) {
	inner, ok := stringInnerSpan(nameArg)
	if !ok {
		// Not a plain string literal (interpolated or computed): there is
		// no literal name to rename, only an expression to visit.
		fr.visitExpr(nameArg, ctx)
		return
	}

	literal := unquoteLiteral(nameArg.Text())
	receiverVerdict := fr.verdictOf(ctx, receiver)
	tok, rename, likelyLocal := fr.ownershipGatedRename(receiverVerdict, literal)
	if !rename {
		return
	}
	fr.addEdit(inner, tok)
	fr.stats.DynamicNameRewrites++
	if likelyLocal {
		fr.warn(nameArg.Span(), literal, "dynamic attribute owner unresolved; renamed under likely-local fallback")
	}
}

// stringInnerSpan returns the byte span of a plain string literal's content,
// excluding its quote delimiters (and any prefix letter such as r/b/f), so
// the Rewriter can replace just the name inside the quotes. It reports
// false for anything other than a non-interpolated string node.
func stringInnerSpan(n *pyparse.Node) (pyparse.Span, bool) {
	if n == nil || n.Kind() != "string" {
		return pyparse.Span{}, false
	}
	for _, c := range n.Children() {
		if c.Kind() == "interpolation" {
			return pyparse.Span{}, false
		}
	}

	raw := n.Text()
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	if i >= len(raw) {
		return pyparse.Span{}, false
	}
	quoteLen := 1
	if i+3 <= len(raw) && (raw[i:i+3] == `"""` || raw[i:i+3] == "'''") {
		quoteLen = 3
	}

	span := n.Span()
	start := span.StartByte + uint32(i) + uint32(quoteLen)
	end := span.EndByte - uint32(quoteLen)
	if end < start {
		return pyparse.Span{}, false
	}
	return pyparse.Span{StartByte: start, EndByte: end}, true
}

// unquoteLiteral strips the quote delimiters (and any string prefix) from a
// plain string literal's raw source text, mirroring internal/index's
// string-literal handling.
func unquoteLiteral(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	body := raw[i:]
	if len(body) >= 6 && (body[:3] == `"""` || body[:3] == "'''") {
		return body[3 : len(body)-3]
	}
	if len(body) >= 2 {
		return body[1 : len(body)-1]
	}
	return body
}
