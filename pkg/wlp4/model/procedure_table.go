package model

import (
	"sort"
	"strings"
)

// ProcedureSignature records the parameter types of a procedure.
type ProcedureSignature struct {
	Name       string
	Parameters []Type
}

func (sig ProcedureSignature) String() string {
	if len(sig.Parameters) == 0 {
		return sig.Name + "()"
	}
	params := make([]string, len(sig.Parameters))
	for i, p := range sig.Parameters {
		params[i] = p.String()
	}
	return sig.Name + "(" + strings.Join(params, ", ") + ")"
}

// ProcedureTable maps procedure names to their signatures. The first registration of a name wins.
type ProcedureTable struct {
	signatures map[string]*ProcedureSignature
}

func newProcedureTable() *ProcedureTable {
	return &ProcedureTable{signatures: map[string]*ProcedureSignature{}}
}

// register adds a signature to the table. It returns false if the name is already registered, in which case the
// table is left unchanged.
func (t *ProcedureTable) register(name string, parameters []Type) bool {
	if _, exists := t.signatures[name]; exists {
		return false
	}
	params := make([]Type, len(parameters))
	copy(params, parameters)
	t.signatures[name] = &ProcedureSignature{Name: name, Parameters: params}
	return true
}

// Lookup returns the signature registered for the given name.
func (t *ProcedureTable) Lookup(name string) (ProcedureSignature, bool) {
	sig, ok := t.signatures[name]
	if !ok {
		return ProcedureSignature{}, false
	}
	return *sig, true
}

func (t *ProcedureTable) Len() int {
	return len(t.signatures)
}

// Signatures returns every registered signature, sorted by name.
func (t *ProcedureTable) Signatures() []ProcedureSignature {
	names := make(stringSet, len(t.signatures))
	for name := range t.signatures {
		names.add(name)
	}
	sigs := make([]ProcedureSignature, 0, len(names))
	for _, name := range names.sortedValues() {
		sigs = append(sigs, *t.signatures[name])
	}
	return sigs
}

type stringSet map[string]struct{}

func (ss stringSet) add(s string) {
	ss[s] = struct{}{}
}

func (ss stringSet) sortedValues() []string {
	values := make([]string, 0, len(ss))
	for v := range ss {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
