// Package docchat wires provider credentials and model configuration into
// ready-to-use AI clients for the multi-document chat application.
//
// API keys come from the process environment (optionally seeded from a local
// .env file outside production), model selection comes from a YAML config
// file read through viper. The package constructs two kinds of handles: a
// chat client backed by Groq's OpenAI-compatible API and an embedding client
// backed by the Google Generative Language API.
//
// # Usage
//
//	chat, err := docchat.GetLLM(logger)
//	if err != nil {
//	    return err
//	}
//	defer chat.Close()
//
//	emb, err := docchat.GetEmbeddings(logger)
//	if err != nil {
//	    return err
//	}
//	defer emb.Close()
//
// Handles are constructed fresh on every call; ownership transfers to the
// caller. All resolution failures surface as *config.ConfigurationError.
package docchat
