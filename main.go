// Command speechscore scores self-introduction transcripts against a fixed
// speaking rubric.
package main

func main() {
	Execute()
}
