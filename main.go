package main

import (
	"github.com/usagereport-project/usagereport/cmd/usagereport"
	_ "github.com/usagereport-project/usagereport/pkg/logger"
)

func main() {
	usagereport.Execute()
}
