// Package shell generates the shell code cenv emits for the calling shell
// to eval. Activation must mutate the caller's environment, so the binary
// never activates anything itself: it prints a snippet (source conda's init
// script, conda activate, confirmation echo) and the installed hook eval's
// it on every directory change (chpwd for Zsh, PROMPT_COMMAND for Bash,
// --on-variable PWD for Fish).
package shell
