package reflects_test

type InterfaceObject interface{}

type StructObject struct{}
