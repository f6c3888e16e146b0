// tilechess plays and analyzes an 8x8 chess variant with extra leaping
// pieces.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.WarnLevel)

	if err := tilechess(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
}

func tilechess(args []string) error {
	root := Root(config.NewConfig())
	root.SetArgs(args)
	return root.Execute()
}
