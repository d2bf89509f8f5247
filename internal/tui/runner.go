package tui

import "fmt"

// PromptContinue asks a yes/no question on the terminal. Non-interactive
// runs answer yes so scripted invocations never block.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}

	fmt.Printf("%s [Y/n]: ", message)

	var response string
	fmt.Scanln(&response)

	return response == "" || response == "y" || response == "Y"
}
