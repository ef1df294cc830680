package infer_test

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	. "github.com/cottand/tinfer/frontend/infer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func requireType(t *testing.T, r *Result, expr ast.Expr, expected Term) {
	t.Helper()
	actual, ok := r.TypeOf(expr)
	require.True(t, ok, "no type inferred for %s", ast.ExprString(expr))
	assert.True(t, expected.Equals(actual), "expected %s to have type %v, but got %v", ast.ExprString(expr), expected, actual)
}

func TestLiterals(t *testing.T) {
	b := ast.NewBuilder()
	cases := []struct {
		expr     ast.Expr
		expected Term
	}{
		{b.Num(0), Number},
		{b.Num(-3.5), Number},
		{b.Num(1e9), Number},
		{b.Bool(true), Bool},
		{b.Bool(false), Bool},
	}
	for _, c := range cases {
		t.Run(ast.ExprString(c.expr), func(t *testing.T) {
			r, err := Infer(c.expr)
			require.NoError(t, err)
			require.Len(t, r.Substitutions, 1)
			assert.True(t, r.Substitutions[0].Var.Equals(KeyByNode.ExprTermFor(c.expr)))
			assert.True(t, r.Substitutions[0].Is.Equals(c.expected))
			assert.Empty(t, r.Unresolved())
		})
	}
}

func TestArithmetic(t *testing.T) {
	b := ast.NewBuilder()
	for _, mk := range []func(l, r ast.Expr) *ast.Binary{b.Add, b.Sub, b.Less} {
		l, rhs := b.Num(1), b.Num(2)
		expr := mk(l, rhs)
		t.Run(ast.ExprString(expr), func(t *testing.T) {
			r, err := Infer(expr)
			require.NoError(t, err)
			requireType(t, r, l, Number)
			requireType(t, r, rhs, Number)
			requireType(t, r, expr, Number)
		})
	}
}

func TestFunction(t *testing.T) {
	b := ast.NewBuilder()
	body := b.Add(b.Var('x'), b.Num(2))
	fn := b.Func(b.Var('x'), body)

	r, err := Infer(fn)
	require.NoError(t, err)

	x, ok := r.TypeOfVar('x')
	require.True(t, ok)
	assert.Equal(t, Number, x)
	requireType(t, r, body, Number)
	requireType(t, r, fn, Arrow(Number, Number))
	requireType(t, r, fn.Arg, Number)
}

func TestApplication(t *testing.T) {
	b := ast.NewBuilder()
	addTwo := func() *ast.Func { return b.Func(b.Var('x'), b.Add(b.Var('x'), b.Num(2))) }

	t.Run("numeric argument", func(t *testing.T) {
		call := b.Call(addTwo(), b.Num(10))
		r, err := Infer(call)
		require.NoError(t, err)
		requireType(t, r, call, Number)
		requireType(t, r, call.Func, Arrow(Number, Number))
		assert.Equal(t, Number, r.Type())
	})

	t.Run("boolean argument", func(t *testing.T) {
		_, err := Infer(b.Call(addTwo(), b.Bool(true)))
		require.Error(t, err)
		assert.Equal(t, ilerr.TypeMismatch, ilerr.CodeOf(err))
	})

	t.Run("applying a number", func(t *testing.T) {
		_, err := Infer(b.Call(b.Num(1), b.Num(2)))
		require.Error(t, err)
		assert.Equal(t, ilerr.TypeMismatch, ilerr.CodeOf(err))
	})
}

func TestHigherOrder(t *testing.T) {
	b := ast.NewBuilder()
	// (fn(x) = x(5) + 2)(fn(y) = y + 5)
	outer := b.Func(b.Var('x'), b.Add(b.Call(b.Var('x'), b.Num(5)), b.Num(2)))
	inner := b.Func(b.Var('y'), b.Add(b.Var('y'), b.Num(5)))
	call := b.Call(outer, inner)

	for _, keying := range []Keying{KeyByNode, KeyByStructure} {
		t.Run(keying.String(), func(t *testing.T) {
			r, err := Infer(call, WithKeying(keying))
			require.NoError(t, err)

			x, ok := r.TypeOfVar('x')
			require.True(t, ok)
			assert.True(t, Arrow(Number, Number).Equals(x), "x: %v", x)
			requireType(t, r, call, Number)
			requireType(t, r, outer, Arrow(Arrow(Number, Number), Number))
			requireType(t, r, inner, Arrow(Number, Number))
			assert.Equal(t, "((Number -> Number) -> Number)", r.Resolve(r.Keying.ExprTermFor(outer)).String())
		})
	}
}

func TestConditional(t *testing.T) {
	b := ast.NewBuilder()

	t.Run("well typed", func(t *testing.T) {
		cond := b.If(b.Var('c'), b.Bool(false), b.Bool(true))
		r, err := Infer(cond)
		require.NoError(t, err)
		requireType(t, r, cond, Bool)
		requireType(t, r, cond.Cond, Bool)
	})

	t.Run("branches unify through a variable", func(t *testing.T) {
		cond := b.If(b.Bool(true), b.Var('z'), b.Num(2))
		r, err := Infer(cond)
		require.NoError(t, err)
		requireType(t, r, cond, Number)
		z, ok := r.TypeOfVar('z')
		require.True(t, ok)
		assert.Equal(t, Number, z)
	})

	cases := map[string]ast.Expr{
		"mismatched branches":   b.If(b.Bool(true), b.Bool(false), b.Num(2)),
		"numeric condition":     b.If(b.Num(1), b.Num(1), b.Num(2)),
		"comparison condition":  b.If(b.Less(b.Num(1), b.Num(2)), b.Num(1), b.Num(2)),
		"function as condition": b.If(b.Func(b.Var('c'), b.Var('c')), b.Num(1), b.Num(2)),
	}
	for name, expr := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Infer(expr)
			require.Error(t, err)
			assert.Equal(t, ilerr.TypeMismatch, ilerr.CodeOf(err), "unexpected error: %v", err)
		})
	}
}

func TestOccursCheck(t *testing.T) {
	b := ast.NewBuilder()
	cases := map[string]ast.Expr{
		"self application":   b.Func(b.Var('x'), b.Call(b.Var('x'), b.Var('x'))),
		"nested application": b.Func(b.Var('f'), b.Call(b.Var('f'), b.Func(b.Var('y'), b.Call(b.Var('f'), b.Var('y'))))),
	}
	for name, expr := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Infer(expr)
			require.Error(t, err)
			assert.Equal(t, ilerr.OccursCheck, ilerr.CodeOf(err), "unexpected error: %v", err)
		})
	}
}

func TestMalformedFunctionArg(t *testing.T) {
	b := ast.NewBuilder()
	cases := map[string]ast.Expr{
		"literal argument": b.Func(b.Num(1), b.Num(2)),
		"nested":           b.Call(b.Var('f'), b.Func(b.Add(b.Var('x'), b.Num(1)), b.Var('x'))),
	}
	for name, expr := range cases {
		t.Run(name, func(t *testing.T) {
			constraints, err := Generate(expr)
			assert.Nil(t, constraints)
			require.Error(t, err)
			assert.Equal(t, ilerr.MalformedFunctionArg, ilerr.CodeOf(err))

			_, err = Infer(expr)
			assert.Equal(t, ilerr.MalformedFunctionArg, ilerr.CodeOf(err))
		})
	}
}

func TestNotImplemented(t *testing.T) {
	b := ast.NewBuilder()
	_, err := Infer(b.Add(b.Str("a"), b.Num(1)))
	require.Error(t, err)
	assert.Equal(t, ilerr.NotImplemented, ilerr.CodeOf(err))
	assert.Contains(t, err.Error(), `"a"`)
}

func TestFreeVariablesStayUnresolved(t *testing.T) {
	b := ast.NewBuilder()

	t.Run("identity", func(t *testing.T) {
		id := b.Func(b.Var('x'), b.Var('x'))
		r, err := Infer(id)
		require.NoError(t, err)
		requireType(t, r, id, Arrow(VarTerm{Name: 'x'}, VarTerm{Name: 'x'}))
		assert.Equal(t, []string{"'x"}, r.Unresolved())
		_, ok := r.TypeOfVar('x')
		assert.False(t, ok)
	})

	t.Run("application of a free variable", func(t *testing.T) {
		call := b.Call(b.Var('f'), b.Var('y'))
		r, err := Infer(call)
		require.NoError(t, err)
		f, ok := r.TypeOfVar('f')
		require.True(t, ok)
		assert.True(t, Arrow(VarTerm{Name: 'y'}, KeyByNode.ExprTermFor(call)).Equals(f), "f: %v", f)
		assert.Equal(t, []string{"'y", "[f(y)]"}, r.Unresolved())
	})
}

func TestKeying(t *testing.T) {
	b := ast.NewBuilder()
	one, otherOne := b.Num(1), b.Num(1)
	sum := b.Add(one, otherOne)

	byNode, err := Infer(sum, WithKeying(KeyByNode))
	require.NoError(t, err)
	byStructure, err := Infer(sum, WithKeying(KeyByStructure))
	require.NoError(t, err)

	assert.Len(t, byNode.Substitutions, 3)
	assert.Len(t, byStructure.Substitutions, 2, "both literals share one placeholder: %v", byStructure.Substitutions)
	assert.Equal(t, Number, byNode.Type())
	assert.Equal(t, Number, byStructure.Type())

	assert.False(t, KeyByNode.ExprTermFor(one).Equals(KeyByNode.ExprTermFor(otherOne)))
	assert.True(t, KeyByStructure.ExprTermFor(one).Equals(KeyByStructure.ExprTermFor(otherOne)))

	for _, s := range []string{"node", "structure"} {
		k, ok := ParseKeying(s)
		assert.True(t, ok)
		assert.Equal(t, s, k.String())
	}
	_, ok := ParseKeying("hash")
	assert.False(t, ok)
}

func TestKeyByStructureOnlyMergesEqualTrees(t *testing.T) {
	b := ast.NewBuilder()
	cases := [][2]ast.Expr{
		{b.Add(b.Num(1), b.Num(2)), b.Add(b.Num(2), b.Num(1))},
		{b.Var(' '), b.Var('_')},
		{b.Num(1), b.Num(1.5)},
		{b.If(b.Var('c'), b.Num(1), b.Num(2)), b.If(b.Var('c'), b.Num(2), b.Num(1))},
	}
	for _, c := range cases {
		left, right := KeyByStructure.ExprTermFor(c[0]), KeyByStructure.ExprTermFor(c[1])
		assert.False(t, left.Equals(right), "%v and %v", left, right)
	}

	same := KeyByStructure.ExprTermFor(b.Func(b.Var('x'), b.Sub(b.Var('x'), b.Num(1))))
	assert.True(t, same.Equals(KeyByStructure.ExprTermFor(b.Func(b.Var('x'), b.Sub(b.Var('x'), b.Num(1))))))
}

func TestUnifyIsIdempotent(t *testing.T) {
	b := ast.NewBuilder()
	exprs := []ast.Expr{
		b.Call(b.Func(b.Var('x'), b.Add(b.Call(b.Var('x'), b.Num(5)), b.Num(2))), b.Func(b.Var('y'), b.Add(b.Var('y'), b.Num(5)))),
		b.Func(b.Var('x'), b.Var('x')),
		b.If(b.Var('c'), b.Var('a'), b.Var('b')),
	}
	for _, expr := range exprs {
		t.Run(ast.ExprString(expr), func(t *testing.T) {
			r, err := Infer(expr)
			require.NoError(t, err)
			again, err := Unify(AsConstraints(r.Substitutions))
			require.NoError(t, err)
			assert.Equal(t, r.Substitutions, again)
		})
	}
}

func TestUnifyWithInitialSubstitution(t *testing.T) {
	b := ast.NewBuilder()
	body := b.Var('x')
	id := b.Func(b.Var('x'), body)
	constraints, err := Generate(id)
	require.NoError(t, err)

	subs, err := Unify(constraints, Substitution{Var: VarTerm{Name: 'x'}, Is: Bool})
	require.NoError(t, err)
	assert.Equal(t, []Substitution{
		{Var: VarTerm{Name: 'x'}, Is: Bool},
		{Var: KeyByNode.ExprTermFor(body), Is: Bool},
		{Var: KeyByNode.ExprTermFor(id), Is: Arrow(Bool, Bool)},
	}, subs)

	constraints, err = Generate(b.Add(b.Var('x'), b.Num(1)))
	require.NoError(t, err)
	_, err = Unify(constraints, Substitution{Var: VarTerm{Name: 'x'}, Is: Bool})
	assert.Equal(t, ilerr.TypeMismatch, ilerr.CodeOf(err))
}

func TestUnifyTerms(t *testing.T) {
	a, z := VarTerm{Name: 'a'}, VarTerm{Name: 'z'}
	cases := []struct {
		name     string
		lhs, rhs Term
		expected []Substitution
		err      ilerr.ErrCode
	}{
		{"equal constants", Number, Number, nil, ilerr.None},
		{"different constants", Number, Bool, nil, ilerr.TypeMismatch},
		{"constant and arrow", Arrow(Number, Number), Bool, nil, ilerr.TypeMismatch},
		{"placeholder on the right", Number, a, []Substitution{{a, Number}}, ilerr.None},
		{"arrows", Arrow(a, Number), Arrow(Bool, z), []Substitution{{a, Bool}, {z, Number}}, ilerr.None},
		{"arrow domains propagate", Arrow(a, a), Arrow(z, Bool), []Substitution{{a, Bool}, {z, Bool}}, ilerr.None},
		{"cycle", a, Arrow(a, Number), nil, ilerr.OccursCheck},
		{"indirect cycle", Arrow(a, z), Arrow(z, Arrow(a, Number)), nil, ilerr.OccursCheck},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			subs, err := Unify([]Constraint{{Lhs: c.lhs, Rhs: c.rhs}})
			assert.Equal(t, c.err, ilerr.CodeOf(err), "error: %v", err)
			if c.err == ilerr.None {
				assert.Equal(t, c.expected, subs)
			}
		})
	}
}

func TestGenerateOrder(t *testing.T) {
	b := ast.NewBuilder()
	cases := []struct {
		expr     ast.Expr
		expected []string
	}{
		{b.Add(b.Num(1), b.Num(2)), []string{
			"[1] = Number", "[2] = Number", "[1] = Number", "[2] = Number", "[1 + 2] = Number",
		}},
		{b.If(b.Bool(true), b.Num(1), b.Num(2)), []string{
			"[true] = Bool", "[1] = Number", "[2] = Number", "[true] = Bool",
			"[if true then 1 else 2] = [1]", "[if true then 1 else 2] = [2]",
		}},
		{b.Call(b.Func(b.Var('x'), b.Var('x')), b.Num(3)), []string{
			"[x] = 'x", "[(lambda(x) x)] = ('x -> [x])", "[3] = Number", "[(lambda(x) x)] = ([3] -> [(lambda(x) x)(3)])",
		}},
	}
	for _, c := range cases {
		t.Run(ast.ExprString(c.expr), func(t *testing.T) {
			constraints, err := Generate(c.expr)
			require.NoError(t, err)
			rendered := make([]string, len(constraints))
			for i, constraint := range constraints {
				rendered[i] = constraint.String()
			}
			assert.Equal(t, c.expected, rendered)
		})
	}
}

func TestTypes(t *testing.T) {
	b := ast.NewBuilder()
	call := b.Call(b.Func(b.Var('x'), b.Add(b.Var('x'), b.Num(2))), b.Num(10))
	r, err := Infer(call)
	require.NoError(t, err)

	var rendered []string
	for _, p := range r.Types() {
		rendered = append(rendered, ast.ExprString(p.Fst)+" : "+p.Snd.String())
	}
	assert.Equal(t, []string{
		"(lambda(x) x + 2)(10) : Number",
		"(lambda(x) x + 2) : (Number -> Number)",
		"x : Number",
		"x + 2 : Number",
		"x : Number",
		"2 : Number",
		"10 : Number",
	}, rendered)
}
