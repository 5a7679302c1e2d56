package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name    string
		params  []ParamSpec
		wantErr bool
	}{
		{"empty", nil, false},
		{"required then optional", []ParamSpec{Required("a", TypeOf[int]()), Optional("b", TypeOf[int]())}, false},
		{"optional then defaulted", []ParamSpec{Optional("a", TypeOf[int]()), Defaulted("b", TypeOf[int](), "1")}, false},
		{"required then rest", []ParamSpec{Required("a", TypeOf[int]()), Rest("b")}, false},
		{"required then variadic", []ParamSpec{Required("a", TypeOf[int]()), Variadic("b", TypeOf[bool]())}, false},
		{"required after optional", []ParamSpec{Optional("a", TypeOf[int]()), Required("b", TypeOf[int]())}, true},
		{"required after defaulted", []ParamSpec{Defaulted("a", TypeOf[int](), "1"), Required("b", TypeOf[int]())}, true},
		{"rest not last", []ParamSpec{Rest("a"), Required("b", TypeOf[int]())}, true},
		{"variadic not last", []ParamSpec{Variadic("a", TypeOf[int]()), Required("b", TypeOf[int]())}, true},
		{"rest on int", []ParamSpec{{Name: "a", Type: TypeOf[int](), Policy: PolicyRest}}, true},
		{"variadic of slices", []ParamSpec{Variadic("a", TypeOf[[]int]())}, true},
		{"variadic after optional", []ParamSpec{Optional("a", TypeOf[int]()), Variadic("b", TypeOf[int]())}, false},
		{"defaulted then variadic", []ParamSpec{Defaulted("a", TypeOf[int](), "1"), Variadic("b", TypeOf[bool]())}, false},
		{"defaulted then rest", []ParamSpec{Defaulted("a", TypeOf[int](), "1"), Rest("b")}, false},
		{"nil type", []ParamSpec{{Name: "a"}}, true},
		{"unknown policy", []ParamSpec{{Name: "a", Type: TypeOf[int](), Policy: Policy(42)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParams("test", tt.params)
			if tt.wantErr {
				require.ErrorIs(t, err, usage.ErrBadDescriptor)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRequiredArgCount(t *testing.T) {
	tests := []struct {
		name   string
		params []ParamSpec
		want   int
	}{
		{"none", nil, 0},
		{"three required", []ParamSpec{Required("a", TypeOf[string]()), Required("b", TypeOf[int]()), Required("c", TypeOf[bool]())}, 3},
		{"optional only", []ParamSpec{Optional("a", TypeOf[string]())}, 0},
		{"required then defaulted", []ParamSpec{Required("a", TypeOf[string]()), Defaulted("b", TypeOf[int](), "0")}, 1},
		{"rest counts", []ParamSpec{Rest("a")}, 1},
		{"required then variadic", []ParamSpec{Required("a", TypeOf[string]()), Variadic("b", TypeOf[bool]())}, 2},
		{"variadic behind defaulted", []ParamSpec{Defaulted("a", TypeOf[int](), "1"), Variadic("b", TypeOf[bool]())}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, requiredArgCount(tt.params))
		})
	}
}

func TestParamSpec_Placeholder(t *testing.T) {
	require.Equal(t, "<target>", Required("target", TypeOf[string]()).placeholder())
	require.Equal(t, "[page]", Optional("page", TypeOf[int]()).placeholder())
	require.Equal(t, "[sides=6]", Defaulted("sides", TypeOf[int](), "6").placeholder())
	require.Equal(t, "<message...>", Rest("message").placeholder())
	require.Equal(t, "<values...>", Variadic("values", TypeOf[int64]()).placeholder())
}

func TestPolicy_String(t *testing.T) {
	require.Equal(t, "required", PolicyRequired.String())
	require.Equal(t, "optional", PolicyOptional.String())
	require.Equal(t, "defaulted", PolicyDefaulted.String())
	require.Equal(t, "rest", PolicyRest.String())
	require.Equal(t, "variadic", PolicyVariadic.String())
	require.Equal(t, "unknown", Policy(9).String())
}

func TestParamSpec_Describe(t *testing.T) {
	p := Required("target", TypeOf[string]()).Describe("who to message")
	require.Equal(t, "who to message", p.Description)
	require.Equal(t, PolicyRequired, p.Policy)
}
