package chainmap

type Stats struct {
	Size         int
	Buckets      int
	EmptyBuckets int
	MaxBucketLen int
	LoadFactor   float32
}
