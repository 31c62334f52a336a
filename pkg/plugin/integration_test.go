// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plugin

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginComponent = `
<template>
  <div class="login-form">
    <el-form :model="loginForm" :rules="rules" ref="loginFormRef">
      <el-form-item label="用户名" prop="username">
        <el-input v-model="loginForm.username" placeholder="请输入用户名"></el-input>
      </el-form-item>
      <el-form-item label="密码" prop="password">
        <el-input type="password" v-model="loginForm.password" placeholder="请输入密码"></el-input>
      </el-form-item>
      <el-form-item>
        <el-button type="primary" @click="handleLogin">登录</el-button>
      </el-form-item>
    </el-form>

    <el-form @submit="customSubmit" :model="otherForm">
      <el-form-item>
        <el-input v-model="otherForm.value"></el-input>
      </el-form-item>
    </el-form>
  </div>
</template>

<script>
export default {
  data() {
    return {
      loginForm: {
        username: '',
        password: ''
      },
      otherForm: {
        value: ''
      }
    }
  }
}
</script>
`

func TestIntegration_RealComponent(t *testing.T) {
	ctx, p := newTestPlugin(t)

	result, err := p.Transform(ctx, Request{Code: loginComponent, ID: "LoginForm.vue"})
	require.NoError(t, err)
	require.Equal(t, Rewritten, result.Kind)

	assert.Contains(t, result.Code, `<el-form :model="loginForm" :rules="rules" ref="loginFormRef" @submit.native.prevent>`)
	assert.Contains(t, result.Code, `<el-form @submit="customSubmit" :model="otherForm">`)
	assert.Equal(t, 1, result.Rewritten)
	assert.Equal(t, strings.Count(loginComponent, "<el-form-item"), strings.Count(result.Code, "<el-form-item"))
	assert.NotContains(t, result.Code, "<el-form-item @submit")
	assert.Equal(t, strings.Count(loginComponent, "\n"), strings.Count(result.Code, "\n"), "single line tags keep line numbers")
}

func TestIntegration_ProjectLayout(t *testing.T) {
	ctx, p := newTestPlugin(t,
		WithInclude("src/**/*.vue"),
		WithExclude("src/test/**/*.vue", "**/*.spec.vue"),
	)

	tests := []struct {
		file          string
		shouldProcess bool
	}{
		{file: "src/components/UserForm.vue", shouldProcess: true},
		{file: "src/pages/Login.vue", shouldProcess: true},
		{file: "src/test/UserForm.vue", shouldProcess: false},
		{file: "src/components/UserForm.spec.vue", shouldProcess: false},
		{file: "other/Form.vue", shouldProcess: false},
	}

	code := `<el-form :model="form">content</el-form>`
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := p.Transform(ctx, Request{Code: code, ID: tt.file})
			require.NoError(t, err)

			if tt.shouldProcess {
				assert.Equal(t, Rewritten, result.Kind)
				assert.Contains(t, result.Code, "@submit.native.prevent")
			} else {
				assert.Equal(t, Unchanged, result.Kind)
			}
		})
	}
}

func TestIntegration_LargeFile(t *testing.T) {
	ctx, p := newTestPlugin(t)

	forms := make([]string, 100)
	for i := range forms {
		forms[i] = fmt.Sprintf(`<el-form :model="form%d">form content %d</el-form>`, i, i)
	}
	large := "\n<template>\n  <div>\n    " + strings.Join(forms, "\n") + "\n  </div>\n</template>\n"

	result, err := p.Transform(ctx, Request{Code: large, ID: "large.vue"})
	require.NoError(t, err)
	require.Equal(t, Rewritten, result.Kind)
	assert.Equal(t, 100, strings.Count(result.Code, "@submit.native.prevent"))
	assert.Equal(t, 100, result.Rewritten)

	irrelevant := "\n<template>\n  <div>\n    " + strings.Repeat("<div>content</div>", 1000) + "\n  </div>\n</template>\n"
	result, err = p.Transform(ctx, Request{Code: irrelevant, ID: "irrelevant.vue"})
	require.NoError(t, err)
	assert.Equal(t, Unchanged, result.Kind)
}

func BenchmarkPlugin_Transform(b *testing.B) {
	ctx := context.Background()
	p, err := New(ctx)
	require.NoError(b, err)

	req := Request{Code: strings.Repeat(loginComponent, 20), ID: "src/LoginForm.vue"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Transform(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
