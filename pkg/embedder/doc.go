// Package embedder provides text embedding clients for vector representations.
//
// This package defines the Client interface and a Google Generative Language
// API implementation used for document retrieval.
//
// # Usage
//
//	// Create a Google embedder
//	emb := embedder.NewGoogleEmbedder(apiKey, embedder.Config{
//	    Model: "text-embedding-004",
//	})
//
//	// Embed text
//	vectors, err := emb.Embed(ctx, []string{"hello world"})
//
// The Client interface supports batch embedding; EmbedSingle is a convenience
// wrapper for a single text.
package embedder
