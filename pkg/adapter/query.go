package adapter

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// maxIndex limita índices explícitos (a[5]=x) para evitar listas enormes
// a partir de uma query string pequena.
const maxIndex = 100

// ParseQuery converte uma query string crua em uma estrutura aninhada de
// mapas e listas, com todos os valores folha como string.
//
// Exemplos:
//
//	a=1&b=2        -> {"a":"1","b":"2"}
//	a[b]=1         -> {"a":{"b":"1"}}
//	a[]=1&a[]=2    -> {"a":["1","2"]}
//	a=1&a=2        -> {"a":["1","2"]}
//	a[0]=x&a[1]=y  -> {"a":["x","y"]}
//	a[1]=y&a[0]=x  -> {"a":["x","y"]}
//
// Query vazia resulta em um mapa vazio.
func ParseQuery(raw string) (map[string]interface{}, error) {
	root := make(map[string]interface{})
	if raw == "" {
		return root, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid value for key %q: %w", key, err)
		}

		segments, err := splitKey(key)
		if err != nil {
			return nil, err
		}

		child, err := assign(root[segments[0]], segments[1:], value, key)
		if err != nil {
			return nil, err
		}
		root[segments[0]] = child
	}

	compact(root)
	return root, nil
}

// splitKey separa "a[b][]" em ["a", "b", ""].
func splitKey(key string) ([]string, error) {
	open := strings.IndexByte(key, '[')
	if open == -1 {
		if strings.IndexByte(key, ']') != -1 {
			return nil, fmt.Errorf("unbalanced brackets in key %q", key)
		}
		if key == "" {
			return nil, fmt.Errorf("empty key")
		}
		return []string{key}, nil
	}

	if open == 0 {
		return nil, fmt.Errorf("empty key in %q", key)
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after brackets in key %q", rest, key)
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return nil, fmt.Errorf("unbalanced brackets in key %q", key)
		}
		seg := rest[1:end]
		if strings.IndexByte(seg, '[') != -1 {
			return nil, fmt.Errorf("unbalanced brackets in key %q", key)
		}
		segments = append(segments, seg)
		rest = rest[end+1:]
	}
	return segments, nil
}

// indexed acumula os elementos de uma lista endereçada por índice (a[2]=x)
// até o fim da leitura, quando compact a converte em lista ordenada.
type indexed map[int]interface{}

// assign grava value no caminho segs a partir de current e devolve o novo nó.
func assign(current interface{}, segs []string, value, key string) (interface{}, error) {
	if len(segs) == 0 {
		switch node := current.(type) {
		case nil:
			return value, nil
		case string:
			return []interface{}{node, value}, nil
		case []interface{}:
			return append(node, value), nil
		case indexed:
			node[node.next()] = value
			return node, nil
		default:
			return nil, conflict(key)
		}
	}

	seg := segs[0]

	if seg == "" {
		child, err := assign(nil, segs[1:], value, key)
		if err != nil {
			return nil, err
		}
		switch node := current.(type) {
		case nil:
			return []interface{}{child}, nil
		case []interface{}:
			return append(node, child), nil
		case indexed:
			node[node.next()] = child
			return node, nil
		default:
			return nil, conflict(key)
		}
	}

	if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 {
		if list, ok := asIndexed(current); ok {
			if idx > maxIndex {
				return nil, fmt.Errorf("index %d out of range in key %q", idx, key)
			}
			child, err := assign(list[idx], segs[1:], value, key)
			if err != nil {
				return nil, err
			}
			list[idx] = child
			return list, nil
		}
	}

	var obj map[string]interface{}
	switch node := current.(type) {
	case nil:
		obj = make(map[string]interface{})
	case map[string]interface{}:
		obj = node
	default:
		return nil, conflict(key)
	}

	child, err := assign(obj[seg], segs[1:], value, key)
	if err != nil {
		return nil, err
	}
	obj[seg] = child
	return obj, nil
}

// next devolve o índice logo após o maior já usado.
func (l indexed) next() int {
	n := 0
	for i := range l {
		if i >= n {
			n = i + 1
		}
	}
	return n
}

// asIndexed aceita nó vazio, lista já indexada ou lista montada por push,
// que é convertida preservando as posições.
func asIndexed(current interface{}) (indexed, bool) {
	switch node := current.(type) {
	case nil:
		return indexed{}, true
	case indexed:
		return node, true
	case []interface{}:
		list := make(indexed, len(node))
		for i, v := range node {
			list[i] = v
		}
		return list, true
	default:
		return nil, false
	}
}

// compact troca cada lista indexada por uma lista na ordem dos índices;
// índices ausentes são descartados.
func compact(node interface{}) interface{} {
	switch n := node.(type) {
	case map[string]interface{}:
		for k, v := range n {
			n[k] = compact(v)
		}
		return n
	case []interface{}:
		for i, v := range n {
			n[i] = compact(v)
		}
		return n
	case indexed:
		keys := make([]int, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		list := make([]interface{}, 0, len(keys))
		for _, k := range keys {
			list = append(list, compact(n[k]))
		}
		return list
	default:
		return node
	}
}

func conflict(key string) error {
	return fmt.Errorf("conflicting value types for key %q", key)
}
