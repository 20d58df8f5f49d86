package bind_group_provider

// BufferWrite is a staged write of CPU data into a GPU buffer owned by a
// BindGroupProvider, addressed by binding index and byte offset. The renderer
// flushes staged writes to the queue before the render pass is encoded, so a
// uniform (e.g. the plane placement rect) updated mid-frame is never observed
// half-written by an in-flight draw.
type BufferWrite struct {
	// Provider owns the destination buffer.
	Provider BindGroupProvider
	// Binding selects the buffer within the provider.
	Binding int
	// Offset is the destination byte offset within the buffer.
	Offset uint64
	// Data is the bytes to write.
	Data []byte
}
