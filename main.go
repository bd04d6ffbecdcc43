package main

import "apod-wallpaper/cmd"

// main delegates to cmd.Execute, which loads configuration, fetches the
// Astronomy Picture of the Day, saves it to the pictures directory and sets
// it as the desktop background.
func main() {
	cmd.Execute()
}
