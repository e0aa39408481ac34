package main

import "github.com/thereayou/forum-lite/internal/server"

func main() {
	s := server.NewServer()
	s.Run()
}
