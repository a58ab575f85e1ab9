// Package syntax is the boundary between the lint rules and the parser.
//
// Source files are parsed with tree-sitter and converted into a small tree of
// Node values tagged with a closed Kind enum. Rules never see grammar type
// strings directly, so grammar differences between JavaScript, TypeScript and
// TSX are absorbed here.
package syntax

// Kind identifies the syntactic role of a Node.
type Kind int

// Node kinds the rules dispatch on. Everything the rules do not care about is KindOther.
const (
	KindOther Kind = iota
	KindProgram
	KindClass
	KindClassHeritage
	KindExtendsClause
	KindClassBody
	KindMethod
	KindField
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindVariableDeclarator
	KindDeclaration
	KindCall
	KindArguments
	KindMember
	KindSubscript
	KindIdentifier
	KindPropertyIdentifier
	KindThis
	KindString
	KindTemplate
	KindTemplateSubstitution
	KindRegex
	KindReturn
	KindBlock
	KindExpressionStatement
	KindAssignment
	KindArray
	KindObject
	KindNew
	KindAs
	KindNonNull
	KindParenthesized
	KindJSXElement
	KindJSXSelfClosing
	KindJSXOpening
	KindJSXClosing
	KindJSXAttribute
	KindJSXText
	KindJSXExpression
	KindTypeArguments
	KindFormalParameters
	KindParameter
	KindAssignmentPattern
	KindObjectPattern
	KindPairPattern
	KindAccessibility
)

var kindNames = [...]string{
	KindOther:                "Other",
	KindProgram:              "Program",
	KindClass:                "Class",
	KindClassHeritage:        "ClassHeritage",
	KindExtendsClause:        "ExtendsClause",
	KindClassBody:            "ClassBody",
	KindMethod:               "Method",
	KindField:                "Field",
	KindFunctionDeclaration:  "FunctionDeclaration",
	KindFunctionExpression:   "FunctionExpression",
	KindArrowFunction:        "ArrowFunction",
	KindVariableDeclarator:   "VariableDeclarator",
	KindDeclaration:          "Declaration",
	KindCall:                 "Call",
	KindArguments:            "Arguments",
	KindMember:               "Member",
	KindSubscript:            "Subscript",
	KindIdentifier:           "Identifier",
	KindPropertyIdentifier:   "PropertyIdentifier",
	KindThis:                 "This",
	KindString:               "String",
	KindTemplate:             "Template",
	KindTemplateSubstitution: "TemplateSubstitution",
	KindRegex:                "Regex",
	KindReturn:               "Return",
	KindBlock:                "Block",
	KindExpressionStatement:  "ExpressionStatement",
	KindAssignment:           "Assignment",
	KindArray:                "Array",
	KindObject:               "Object",
	KindNew:                  "New",
	KindAs:                   "As",
	KindNonNull:              "NonNull",
	KindParenthesized:        "Parenthesized",
	KindJSXElement:           "JSXElement",
	KindJSXSelfClosing:       "JSXSelfClosing",
	KindJSXOpening:           "JSXOpening",
	KindJSXClosing:           "JSXClosing",
	KindJSXAttribute:         "JSXAttribute",
	KindJSXText:              "JSXText",
	KindJSXExpression:        "JSXExpression",
	KindTypeArguments:        "TypeArguments",
	KindFormalParameters:     "FormalParameters",
	KindParameter:            "Parameter",
	KindAssignmentPattern:    "AssignmentPattern",
	KindObjectPattern:        "ObjectPattern",
	KindPairPattern:          "PairPattern",
	KindAccessibility:        "Accessibility",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// grammarKinds maps tree-sitter node types of the javascript, typescript and
// tsx grammars onto Kind. Types missing from the map become KindOther.
var grammarKinds = map[string]Kind{
	"program":                               KindProgram,
	"class_declaration":                     KindClass,
	"abstract_class_declaration":            KindClass,
	"class":                                 KindClass,
	"class_heritage":                        KindClassHeritage,
	"extends_clause":                        KindExtendsClause,
	"class_body":                            KindClassBody,
	"method_definition":                     KindMethod,
	"field_definition":                      KindField,
	"public_field_definition":               KindField,
	"function_declaration":                  KindFunctionDeclaration,
	"generator_function_declaration":        KindFunctionDeclaration,
	"function":                              KindFunctionExpression,
	"function_expression":                   KindFunctionExpression,
	"generator_function":                    KindFunctionExpression,
	"arrow_function":                        KindArrowFunction,
	"variable_declarator":                   KindVariableDeclarator,
	"lexical_declaration":                   KindDeclaration,
	"variable_declaration":                  KindDeclaration,
	"call_expression":                       KindCall,
	"arguments":                             KindArguments,
	"member_expression":                     KindMember,
	"subscript_expression":                  KindSubscript,
	"identifier":                            KindIdentifier,
	"type_identifier":                       KindIdentifier,
	"shorthand_property_identifier":         KindIdentifier,
	"shorthand_property_identifier_pattern": KindIdentifier,
	"property_identifier":                   KindPropertyIdentifier,
	"private_property_identifier":           KindPropertyIdentifier,
	"this":                                  KindThis,
	"string":                                KindString,
	"template_string":                       KindTemplate,
	"template_substitution":                 KindTemplateSubstitution,
	"regex":                                 KindRegex,
	"return_statement":                      KindReturn,
	"statement_block":                       KindBlock,
	"expression_statement":                  KindExpressionStatement,
	"assignment_expression":                 KindAssignment,
	"augmented_assignment_expression":       KindAssignment,
	"array":                                 KindArray,
	"object":                                KindObject,
	"new_expression":                        KindNew,
	"as_expression":                         KindAs,
	"satisfies_expression":                  KindAs,
	"type_assertion":                        KindAs,
	"non_null_expression":                   KindNonNull,
	"parenthesized_expression":              KindParenthesized,
	"jsx_element":                           KindJSXElement,
	"jsx_self_closing_element":              KindJSXSelfClosing,
	"jsx_opening_element":                   KindJSXOpening,
	"jsx_closing_element":                   KindJSXClosing,
	"jsx_attribute":                         KindJSXAttribute,
	"jsx_text":                              KindJSXText,
	"jsx_expression":                        KindJSXExpression,
	"type_arguments":                        KindTypeArguments,
	"formal_parameters":                     KindFormalParameters,
	"required_parameter":                    KindParameter,
	"optional_parameter":                    KindParameter,
	"assignment_pattern":                    KindAssignmentPattern,
	"object_assignment_pattern":             KindAssignmentPattern,
	"object_pattern":                        KindObjectPattern,
	"pair_pattern":                          KindPairPattern,
	"accessibility_modifier":                KindAccessibility,
}

func kindOf(grammarType string) Kind {
	return grammarKinds[grammarType]
}
