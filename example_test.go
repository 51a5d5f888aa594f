package yini_test

import (
	"fmt"

	yini "github.com/yini-lang/yini-go"
)

func Example() {
	const config = `
// application config
debug = off

^ server
host = 'localhost'
port = 8080
`

	doc, err := yini.Parse(config)
	if err != nil {
		panic(err)
	}

	port, err := doc.Section("server").Get("port")
	if err != nil {
		panic(err)
	}
	n, err := port.AsInt()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 8080
}

func ExampleDocument_Serialize() {
	doc := yini.NewDocument()
	doc.Set("name", yini.String("demo"))

	server := doc.Section("server")
	server.Set("port", yini.Int(9000))
	server.Child("limits").Set("timeouts", yini.Array(yini.Float(1.5), yini.Float(3)))

	fmt.Print(doc.Serialize())
	// Output:
	// name = 'demo'
	// ^ server
	//     port = 9000
	//
	//     ^^ limits
	//         timeouts = [1.5, 3.0]
}
