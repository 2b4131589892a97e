package main

import "github.com/joshcarp/softmaxgo"

func main() {
	softmaxgo.InitializeCommand()
}
