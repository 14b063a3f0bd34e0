package knowledge

// defaultSnapshot built-in reference tables.
// Entry order is a relevance ranking: generic responses pick the
// first 3 tools, first 2 techniques and the first pattern.
func defaultSnapshot() Snapshot {
	return Snapshot{
		CategoryWeb: {
			Tools:      []string{"burp suite", "dirb", "gobuster", "nikto", "wfuzz", "sqlmap", "nmap"},
			Techniques: []string{"sql injection", "xss", "csrf", "directory traversal", "lfi", "rfi", "ssrf", "command injection"},
			Patterns:   []string{"' OR 1=1--", "<script>alert(1)</script>", "../../../etc/passwd"},
		},
		CategoryCrypto: {
			Tools:      []string{"john the ripper", "hashcat", "openssl", "python", "sage", "factordb"},
			Techniques: []string{"caesar cipher", "vigenere", "rsa", "aes", "base64", "hash cracking", "frequency analysis"},
			Patterns:   []string{"base64 text padded with =", "shifted alphabet with preserved word lengths", "RSA with a small public exponent"},
		},
		CategoryPwn: {
			Tools:      []string{"gdb", "ghidra", "ida", "pwntools", "ropper", "checksec", "strings"},
			Techniques: []string{"buffer overflow", "rop", "ret2libc", "format string", "heap exploitation", "stack canary"},
			Patterns:   []string{"long input overwriting the saved return address", "%x %x %n format string leaks", "use-after-free on a freed chunk"},
		},
		CategoryReverse: {
			Tools:      []string{"ghidra", "ida", "x64dbg", "ollydbg", "radare2", "strings", "file"},
			Techniques: []string{"disassembly", "decompilation", "debugging", "string analysis", "packing", "obfuscation"},
			Patterns:   []string{"strcmp against a hardcoded buffer", "UPX section headers", "xor loop over an embedded blob"},
		},
		CategoryForensics: {
			Tools:      []string{"autopsy", "volatility", "wireshark", "binwalk", "exiftool", "steghide"},
			Techniques: []string{"file analysis", "network analysis", "memory dump", "steganography", "metadata"},
			Patterns:   []string{"extra bytes after the PNG IEND chunk", "ZIP signature inside a JPEG", "credentials in cleartext HTTP streams"},
		},
		CategoryOSINT: {
			Tools:      []string{"maltego", "shodan", "google dorks", "whois", "nslookup", "social-analyzer"},
			Techniques: []string{"social media", "search engines", "whois", "dns", "geolocation", "people search"},
			Patterns:   []string{"GPS coordinates in photo EXIF data", "reused usernames across platforms", "subdomains in certificate transparency logs"},
		},
		CategoryMisc: {
			Tools:      []string{"python", "cyberchef", "strings", "xxd"},
			Techniques: []string{"programming", "logic puzzles", "encoding", "protocols", "automation"},
			Patterns:   []string{"flag{...} hidden in plain sight", "nested encodings", "custom protocol over a raw socket"},
		},
	}
}
