package gen

import "github.com/dave/jennifer/jen"

// registrationFunc emits a definition's registration function. The body
// follows a depth-first, dependencies-before-self protocol: every referenced
// definition's registration function runs first, then the definition's own
// document is registered under its name. The Begin guard makes the recursion
// terminate even when definitions reference each other, and re-registering a
// shared dependency is a no-op on the registry side, so callers may invoke
// registration functions in any order.
func registrationFunc(cfg *Config, n Names, refs []string) *jen.Statement {
	return jen.Commentf("%s registers the schema document for %s and,", n.AddFunc, n.ID).Line().
		Comment("transitively, every schema it references.").Line().
		Func().Id(n.AddFunc).Params().BlockFunc(func(g *jen.Group) {
			g.If(jen.Op("!").Qual(schemaPkg, "Begin").Call(jen.Lit(n.ID))).Block(
				jen.Return(),
			)
			for _, ref := range refs {
				rn := DeriveNames(ref)
				g.Qual(cfg.definitionPkg(rn), rn.AddFunc).Call()
			}
			g.Qual(schemaPkg, "Register").Call(
				jen.Lit(n.ID),
				jen.Index().Byte().Parens(jen.Id(n.Schema)),
			)
		})
}
