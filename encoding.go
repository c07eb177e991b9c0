package mathsteps

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ToJSON renders n as the wire form the CLI and HTTP surfaces exchange
// with callers that build trees without a real parser: every Node kind
// maps to an object tagged by "type".
func ToJSON(n Node) (string, error) {
	b, err := json.Marshal(nodeToJSON(n))
	return string(b), err
}

func nodeToJSON(n Node) map[string]interface{} {
	switch v := n.(type) {
	case *Constant:
		return map[string]interface{}{"type": "const", "value": v.Value.RatString()}
	case *Symbol:
		return map[string]interface{}{"type": "sym", "name": v.Name}
	case *UnaryMinus:
		return map[string]interface{}{"type": "neg", "child": nodeToJSON(v.Child)}
	case *Parenthesis:
		return map[string]interface{}{"type": "paren", "content": nodeToJSON(v.Content)}
	case *Function:
		return map[string]interface{}{"type": "func", "name": v.Name, "arg": nodeToJSON(v.Arg)}
	case *Colored:
		return map[string]interface{}{"type": "colored", "group": v.Group, "child": nodeToJSON(v.Node)}
	case *Operator:
		children := make([]interface{}, len(v.Children))
		for i, c := range v.Children {
			children[i] = nodeToJSON(c)
		}
		return map[string]interface{}{
			"type":     "op",
			"op":       string(v.Op),
			"implicit": v.Implicit,
			"children": children,
		}
	}
	return nil
}

// FromJSON parses the wire form ToJSON produces back into a Node. It
// validates every field it reads instead of assuming shape, since
// input arrives from outside the process.
func FromJSON(data map[string]interface{}) (Node, error) {
	if data == nil {
		return nil, fmt.Errorf("node must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subObj := func(field string) (map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		return m, nil
	}

	subObjArray := func(field string) ([]map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]map[string]interface{}, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			out[i] = m
		}
		return out, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	switch typ {
	case "const":
		s, err := subString("value")
		if err != nil {
			return nil, err
		}
		r := new(big.Rat)
		if _, ok := r.SetString(s); !ok {
			return nil, fmt.Errorf("const: invalid value %q", s)
		}
		return &Constant{Value: r}, nil

	case "sym":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		return Sym(name), nil

	case "neg":
		childM, err := subObj("child")
		if err != nil {
			return nil, err
		}
		child, err := FromJSON(childM)
		if err != nil {
			return nil, fmt.Errorf("neg: child: %w", err)
		}
		return Neg(child), nil

	case "paren":
		contentM, err := subObj("content")
		if err != nil {
			return nil, err
		}
		content, err := FromJSON(contentM)
		if err != nil {
			return nil, fmt.Errorf("paren: content: %w", err)
		}
		return Paren(content), nil

	case "func":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		argM, err := subObj("arg")
		if err != nil {
			return nil, err
		}
		arg, err := FromJSON(argM)
		if err != nil {
			return nil, fmt.Errorf("func: arg: %w", err)
		}
		return &Function{Name: name, Arg: arg}, nil

	case "colored":
		groupAny, ok := data["group"]
		if !ok {
			return nil, fmt.Errorf("colored: missing 'group'")
		}
		groupF, ok := groupAny.(float64)
		if !ok {
			return nil, fmt.Errorf("colored: 'group' must be a number")
		}
		childM, err := subObj("child")
		if err != nil {
			return nil, err
		}
		child, err := FromJSON(childM)
		if err != nil {
			return nil, fmt.Errorf("colored: child: %w", err)
		}
		return Colorize(child, int(groupF)), nil

	case "op":
		opStr, err := subString("op")
		if err != nil {
			return nil, err
		}
		objs, err := subObjArray("children")
		if err != nil {
			return nil, err
		}
		children := make([]Node, len(objs))
		for i, o := range objs {
			c, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("op %s: children[%d]: %w", opStr, i, err)
			}
			children[i] = c
		}
		implicit, _ := data["implicit"].(bool)
		return &Operator{Op: OpKind(opStr), Implicit: implicit, Children: children}, nil
	}
	return nil, fmt.Errorf("unknown node type %q", typ)
}

// ParseJSON is a convenience wrapper for callers holding a raw JSON
// string rather than an already-decoded map, e.g. an HTTP request body.
func ParseJSON(raw string) (Node, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return FromJSON(data)
}
