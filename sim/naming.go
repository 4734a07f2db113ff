package sim

import (
	"strconv"
	"strings"
)

// NameMustBeValid panics if the name does not follow the naming convention.
//  1. It must be organized in a hierarchical structure. For example, a name
//     "A.B.C" is valid, but "A.B.C." is not.
//  2. Individual names must not be empty. For example, "A..B" is not valid.
//  3. Individual names must be named as capitalized CamelCase style.
//     For example, "A.b" is not valid.
//  4. Elements in a series must be named using square-bracket notation, for
//     example "Net.Radio[2]".
func NameMustBeValid(name string) {
	for _, token := range strings.Split(name, ".") {
		tokenMustBeValid(name, token)
	}
}

func tokenMustBeValid(name, token string) {
	elemName, rest, _ := strings.Cut(token, "[")
	if elemName == "" {
		panic("name " + name + " is not valid: element must not be empty")
	}

	if strings.ContainsAny(elemName, "_\"'- ") {
		panic("name " + name + " is not valid: element " + elemName +
			" contains an invalid character")
	}

	if elemName[0] < 'A' || elemName[0] > 'Z' {
		panic("name " + name + " is not valid: element " + elemName +
			" must start with a capital letter")
	}

	if rest == "" {
		return
	}

	for _, index := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
		if _, err := strconv.Atoi(index); err != nil {
			panic("name " + name + " is not valid: index must be an integer")
		}
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
