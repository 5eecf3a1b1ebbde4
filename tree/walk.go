// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"xu.dev/core/base/errors"
)

// ErrMalformedTree is returned by [WalkDown] when the tree has a nil
// child, reaches a node more than once (a cycle or a shared subtree),
// or is deeper than the allowed maximum.
var ErrMalformedTree = errors.New("tree: malformed tree")

// walkFrame is one entry of the explicit traversal stack:
// the node and the index of the next child to visit.
type walkFrame struct {
	node Node
	next int
}

// WalkDown calls fun on the root and then on every node below it
// in depth-first pre-order: a parent before its children, and
// children in index order. If fun returns [Break], the children
// of that node are skipped. The traversal uses an explicit stack,
// so memory use is proportional to depth and deep trees cannot
// overflow the goroutine stack.
//
// maxDepth bounds the depth of the tree, where the root has depth 0;
// zero or a negative value means no bound. A nil root is an empty
// tree and fun is not called. Any structural problem stops the walk
// and returns an error wrapping [ErrMalformedTree]. Cycles and shared
// subtrees are found through pointer nodes only; a cycle made purely
// of value nodes is only caught by maxDepth.
func WalkDown(root Node, maxDepth int, fun func(n Node) bool) error {
	if isNil(root) {
		return nil
	}
	seen := map[Node]struct{}{}
	if err := markSeen(seen, root, nil, -1); err != nil {
		return err
	}
	if !fun(root) {
		return nil
	}
	stack := []walkFrame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= top.node.NumChildren() {
			stack = stack[:len(stack)-1]
			continue
		}
		i := top.next
		top.next++
		kid := top.node.Child(i)
		if isNil(kid) {
			return fmt.Errorf("%w: nil child at %s", ErrMalformedTree, stackPath(stack, i))
		}
		if maxDepth > 0 && len(stack) > maxDepth {
			return fmt.Errorf("%w: depth exceeds %d at %s", ErrMalformedTree, maxDepth, stackPath(stack, i))
		}
		if err := markSeen(seen, kid, stack, i); err != nil {
			return err
		}
		if !fun(kid) {
			continue
		}
		stack = append(stack, walkFrame{node: kid})
	}
	return nil
}

// markSeen records n as visited, returning an error if it already was.
// Only pointer nodes have an identity to track: value nodes are copies,
// and two equal values in different places are different widgets.
func markSeen(seen map[Node]struct{}, n Node, stack []walkFrame, idx int) error {
	if reflect.ValueOf(n).Kind() != reflect.Pointer {
		return nil
	}
	if _, ok := seen[n]; ok {
		return fmt.Errorf("%w: node %v reached more than once at %s", ErrMalformedTree, n, stackPath(stack, idx))
	}
	seen[n] = struct{}{}
	return nil
}

// stackPath returns the child index path of the child idx of the
// top of the stack, in the form "/0/2/1". The root is "/".
func stackPath(stack []walkFrame, idx int) string {
	if idx < 0 {
		return "/"
	}
	var b strings.Builder
	// frames below the top have already advanced next past the
	// child currently being visited.
	for _, f := range stack[:len(stack)-1] {
		b.WriteString("/")
		b.WriteString(strconv.Itoa(f.next - 1))
	}
	b.WriteString("/")
	b.WriteString(strconv.Itoa(idx))
	return b.String()
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
