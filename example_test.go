package ptsd_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava12/ptsd/loader"
)

// Example parses a root Thrift file that includes a second one, then
// resolves a typedef's name across the include boundary: main.thrift's
// UserID resolves to shared.SharedID, which in turn resolves to shared's
// underlying string typedef.
func Example() {
	dir, err := os.MkdirTemp("", "ptsd-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	shared := `
typedef string SharedID

struct Shared {
  1: SharedID id,
}
`
	main := `
include "shared.thrift"

typedef shared.SharedID UserID

struct User {
  1: UserID id,
  2: string name,
}
`
	if err := os.WriteFile(filepath.Join(dir, "shared.thrift"), []byte(shared), 0o644); err != nil {
		fmt.Println(err)
		return
	}
	rootPath := filepath.Join(dir, "main.thrift")
	if err := os.WriteFile(rootPath, []byte(main), 0o644); err != nil {
		fmt.Println(err)
		return
	}

	l, err := loader.New(rootPath, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	crossModule, err := l.Find("UserID", "main", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(crossModule)

	underlying, err := l.Find("UserID", "main", true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(underlying)

	// Output:
	// shared.SharedID
	// string
}
